package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// threadStore implements driven.ThreadStore.
type threadStore struct {
	store *Store
}

var _ driven.ThreadStore = (*threadStore)(nil)

// SaveThread stores or updates a thread's metadata.
func (s *threadStore) SaveThread(ctx context.Context, thread *domain.Thread) error {
	if thread == nil || thread.ID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	createdAt := thread.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := thread.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO threads (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			updated_at = excluded.updated_at
	`, thread.ID, thread.Title, createdAt, updatedAt)

	if err != nil {
		return fmt.Errorf("saving thread: %w", err)
	}
	return nil
}

// GetThread retrieves a thread with its messages in creation order.
func (s *threadStore) GetThread(ctx context.Context, id string) (*domain.Thread, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, created_at, updated_at
		FROM threads WHERE id = ?
	`, id)

	var thread domain.Thread
	if err := row.Scan(&thread.ID, &thread.Title, &thread.CreatedAt, &thread.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning thread: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, thread_id, role, content, sources, created_at
		FROM messages WHERE thread_id = ?
		ORDER BY created_at, id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		thread.Messages = append(thread.Messages, *msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	return &thread, nil
}

// ListThreads returns all cached threads, most recently updated first.
func (s *threadStore) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, created_at, updated_at
		FROM threads
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread //nolint:prealloc // size unknown from query
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.ID, &thread.Title, &thread.CreatedAt, &thread.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning thread: %w", err)
		}
		threads = append(threads, thread)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating threads: %w", err)
	}

	return threads, nil
}

// AppendMessage adds a message to a thread and bumps its updated time.
func (s *threadStore) AppendMessage(ctx context.Context, threadID string, msg *domain.AssistantMessage) error {
	if threadID == "" || msg == nil || msg.ID == "" {
		return domain.ErrInvalidInput
	}

	sourcesJSON, err := json.Marshal(msg.Sources)
	if err != nil {
		return fmt.Errorf("marshalling sources: %w", err)
	}

	now := time.Now().UTC()
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// The thread row may not exist yet when the backend assigns a new
	// thread identifier on the first question.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO threads (id, title, created_at, updated_at)
		VALUES (?, '', ?, ?)
		ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at
	`, threadID, now, now); err != nil {
		return fmt.Errorf("upserting thread: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO messages (id, thread_id, role, content, sources, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			sources = excluded.sources
	`, msg.ID, threadID, string(msg.Role), msg.ContentMarkdown, string(sourcesJSON), createdAt); err != nil {
		return fmt.Errorf("saving message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteThread removes a thread and its messages.
func (s *threadStore) DeleteThread(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM threads WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting thread: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (s *threadStore) Close() error {
	return s.store.Close()
}

// scanMessage scans a message from *sql.Rows.
func scanMessage(rows *sql.Rows) (*domain.AssistantMessage, error) {
	var msg domain.AssistantMessage
	var role string
	var sourcesJSON sql.NullString

	if err := rows.Scan(&msg.ID, &msg.ThreadID, &role, &msg.ContentMarkdown,
		&sourcesJSON, &msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}

	msg.Role = domain.Role(role)

	if sourcesJSON.Valid && sourcesJSON.String != jsonNull && sourcesJSON.String != "" {
		if err := json.Unmarshal([]byte(sourcesJSON.String), &msg.Sources); err != nil {
			return nil, fmt.Errorf("unmarshalling sources: %w", err)
		}
	}

	return &msg, nil
}
