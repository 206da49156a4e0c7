package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoSnapshot is returned when no price fetch has ever succeeded.
var ErrNoSnapshot = errors.New("no price snapshot stored")

// SaveSnapshot records a successful raw price fetch. Only the latest row is
// ever read back; old rows are pruned to keep the file small.
func (s *Store) SaveSnapshot(ctx context.Context, rows any, fetchedAt time.Time) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (payload, fetched_at) VALUES (?, ?)`,
		string(payload), fetchedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT 5)`,
	); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	return tx.Commit()
}

// LatestSnapshot unmarshals the most recent stored payload into dest.
func (s *Store) LatestSnapshot(ctx context.Context, dest any) (time.Time, error) {
	var payload, fetchedAt string
	err := s.reader.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return time.Time{}, fmt.Errorf("decode snapshot: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse fetched_at: %w", err)
	}
	return t, nil
}
