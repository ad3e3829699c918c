package storage

import (
	"context"
	"fmt"

	"dexQuery/internal/model"
)

// Storage defines a sink for normalized snapshot records.
type Storage interface {
	PutRecords(ctx context.Context, records []model.SnapshotRecord) error
}

// Multi writes every batch to each sink in order and stops at the first failure.
type Multi []Storage

func (m Multi) PutRecords(ctx context.Context, records []model.SnapshotRecord) error {
	for i, sink := range m {
		if err := sink.PutRecords(ctx, records); err != nil {
			return fmt.Errorf("sink %d: %w", i, err)
		}
	}
	return nil
}
