// Package version centralizes version strings for the logical components
// whose output gets cached. Cache keys embed these versions, so bumping one
// after a logic change invalidates every stale entry without touching Redis.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings for the parts of the pipeline
// that shape cached responses. Increment the matching field before deploying
// a change to that component.
var ComponentVersions = struct {
	// Classifier covers the intent cascade and the analyzer's keyword
	// tables. Bump it when rules or tables change.
	Classifier string

	// Templates covers the base templates, target-AI wrappers, and
	// expertise blocks.
	Templates string

	// Scoring covers the quality scorer and the suggestion heuristics.
	Scoring string
}{
	Classifier: "v1.0",
	Templates:  "v1.0",
	Scoring:    "v1.0",
}

// VersionedCacheKey builds a cache key from a prefix, a hash of the payload,
// and the current component versions.
//
// Example output: "optcache:a1b2c3d4...:cv1.0_tv1.0_sv1.0"
func VersionedCacheKey(prefix, payload string) string {
	hasher := sha256.New()
	hasher.Write([]byte(payload))
	payloadHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("cv%s_tv%s_sv%s",
		ComponentVersions.Classifier,
		ComponentVersions.Templates,
		ComponentVersions.Scoring,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, payloadHash, versionString)
}
