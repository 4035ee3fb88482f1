package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PromptSession is one recorded optimization request.
type PromptSession struct {
	ID           string
	Domain       string
	TaskType     string
	RawPrompt    string
	QualityScore int
	CreatedAt    time.Time
}

// PromptVersion is one generated prompt within a session.
type PromptVersion struct {
	ID              string
	SessionID       string
	Label           string
	OptimizedPrompt string
	WasCopied       bool
	Rating          *int
	CreatedAt       time.Time
}

// Repository provides persistence for prompt sessions and their versions.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSession inserts a session row and its initial version, returning the
// populated session.
func (r *Repository) CreateSession(ctx context.Context, domain, taskType, rawPrompt string, qualityScore int, optimizedPrompt string) (*PromptSession, error) {
	now := time.Now().UTC()
	s := &PromptSession{
		ID:           uuid.NewString(),
		Domain:       domain,
		TaskType:     taskType,
		RawPrompt:    rawPrompt,
		QualityScore: qualityScore,
		CreatedAt:    now,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting session transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO prompt_sessions (id, domain, task_type, raw_prompt, quality_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Domain, s.TaskType, s.RawPrompt, s.QualityScore, s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting prompt session: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO prompt_versions (id, session_id, label, optimized_prompt, was_copied, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		uuid.NewString(), s.ID, "initial", optimizedPrompt, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting prompt version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing prompt session: %w", err)
	}
	return s, nil
}

// AddVersion appends a new version to an existing session.
func (r *Repository) AddVersion(ctx context.Context, sessionID, label, optimizedPrompt string) (*PromptVersion, error) {
	v := &PromptVersion{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Label:           label,
		OptimizedPrompt: optimizedPrompt,
		CreatedAt:       time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prompt_versions (id, session_id, label, optimized_prompt, was_copied, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		v.ID, v.SessionID, v.Label, v.OptimizedPrompt, v.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting prompt version: %w", err)
	}
	return v, nil
}

// ListRecent returns the newest sessions first, capped at limit.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*PromptSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, domain, task_type, raw_prompt, quality_score, created_at
		FROM prompt_sessions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*PromptSession
	for rows.Next() {
		var s PromptSession
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Domain, &s.TaskType, &s.RawPrompt, &s.QualityScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning prompt session: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing session created_at: %w", err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// Versions returns a session's versions in creation order.
func (r *Repository) Versions(ctx context.Context, sessionID string) ([]*PromptVersion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, label, optimized_prompt, was_copied, rating, created_at
		FROM prompt_versions WHERE session_id = ? ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing prompt versions: %w", err)
	}
	defer rows.Close()

	var versions []*PromptVersion
	for rows.Next() {
		var v PromptVersion
		var createdAt string
		var wasCopied int
		var rating sql.NullInt64
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Label, &v.OptimizedPrompt, &wasCopied, &rating, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning prompt version: %w", err)
		}
		v.WasCopied = wasCopied != 0
		if rating.Valid {
			value := int(rating.Int64)
			v.Rating = &value
		}
		if v.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing version created_at: %w", err)
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}
