package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ekozhina/bridgeway/internal/db"
)

// Store provides CRUD operations for submissions and delivery attempts.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new submission. If s.ID is empty a UUID is generated.
// Returns the stored ID.
func (st *Store) Create(ctx context.Context, s Submission) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	_, err := st.db.ExecContext(ctx, `
		INSERT INTO submissions (id, name, phone, email, message, forwarded)
		VALUES (?, ?, ?, ?, ?, 0)`,
		s.ID, s.Name, s.Phone, s.Email, s.Message,
	)
	if err != nil {
		return "", fmt.Errorf("inserting submission: %w", err)
	}
	return s.ID, nil
}

// GetByID retrieves a single submission.
func (st *Store) GetByID(ctx context.Context, id string) (*Submission, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, message, forwarded, created_at
		FROM submissions WHERE id = ?`, id)

	var s Submission
	var forwarded int
	var created string
	if err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Message, &forwarded, &created); err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	s.Forwarded = forwarded != 0
	if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
		s.CreatedAt = t
	}
	return &s, nil
}

// List returns submissions newest first, up to limit (0 means no limit).
func (st *Store) List(ctx context.Context, limit int) ([]Submission, error) {
	query := `
		SELECT id, name, phone, email, message, forwarded, created_at
		FROM submissions ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := st.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		var forwarded int
		var created string
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Message, &forwarded, &created); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		s.Forwarded = forwarded != 0
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			s.CreatedAt = t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MarkForwarded flags a submission as successfully delivered.
func (st *Store) MarkForwarded(ctx context.Context, id string) error {
	_, err := st.db.ExecContext(ctx, `UPDATE submissions SET forwarded = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking submission forwarded: %w", err)
	}
	return nil
}

// RecordAttempt logs one delivery attempt for a submission.
func (st *Store) RecordAttempt(ctx context.Context, submissionID, endpoint string, statusCode int, attemptErr error) error {
	errText := ""
	if attemptErr != nil {
		errText = attemptErr.Error()
	}
	_, err := st.db.ExecContext(ctx, `
		INSERT INTO delivery_attempts (id, submission_id, endpoint, status_code, error)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), submissionID, endpoint, statusCode, errText,
	)
	if err != nil {
		return fmt.Errorf("recording delivery attempt: %w", err)
	}
	return nil
}
