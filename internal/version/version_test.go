package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionedCacheKey_Shape(t *testing.T) {
	key := VersionedCacheKey("optcache", "some payload")

	parts := strings.Split(key, ":")
	assert.Len(t, parts, 3)
	assert.Equal(t, "optcache", parts[0])
	assert.Len(t, parts[1], 64) // sha256 hex
	assert.Contains(t, parts[2], "cv")
	assert.Contains(t, parts[2], "tv")
	assert.Contains(t, parts[2], "sv")
}

func TestVersionedCacheKey_PayloadSensitive(t *testing.T) {
	a := VersionedCacheKey("p", "one")
	b := VersionedCacheKey("p", "two")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, VersionedCacheKey("p", "one"))
}
