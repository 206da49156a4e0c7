package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swapdesk/swapdesk/internal/swap"
)

func (s *Store) CreateSwap(ctx context.Context, r *swap.Receipt) error {
	if r.ID == "" {
		r.ID = uuid.Must(uuid.NewV7()).String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.writer.ExecContext(ctx,
		`INSERT INTO swaps (id, from_symbol, to_symbol, send_amount, receive_amount, rate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.FromSymbol, r.ToSymbol, r.SendAmount, r.ReceiveAmount, r.Rate,
		r.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert swap: %w", err)
	}
	return nil
}

func (s *Store) ListSwaps(ctx context.Context, limit int) ([]swap.Receipt, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.reader.QueryContext(ctx,
		`SELECT id, from_symbol, to_symbol, send_amount, receive_amount, rate, created_at
		 FROM swaps ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query swaps: %w", err)
	}
	defer rows.Close()

	var out []swap.Receipt
	for rows.Next() {
		var r swap.Receipt
		var createdAt string
		if err := rows.Scan(&r.ID, &r.FromSymbol, &r.ToSymbol, &r.SendAmount, &r.ReceiveAmount, &r.Rate, &createdAt); err != nil {
			return nil, fmt.Errorf("scan swap: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
