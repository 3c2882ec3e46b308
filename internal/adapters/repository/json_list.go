package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// jsonList stores an append-only array of T as one JSON value per key.
// A malformed value is cleared and read as empty.
type jsonList[T any] struct {
	store  ports.KeyValueStore
	logger *logging.Logger
	mu     sync.Mutex
}

func newJSONList[T any](store ports.KeyValueStore, logger *logging.Logger) *jsonList[T] {
	if logger == nil {
		logger = logging.Default()
	}
	return &jsonList[T]{store: store, logger: logger}
}

func (l *jsonList[T]) read(ctx context.Context, key string) ([]T, error) {
	raw, err := l.store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		l.logger.Warn("clearing malformed stored list", "key", key, "error", err)
		if delErr := l.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("clear %s: %w", key, delErr)
		}
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (l *jsonList[T]) append(ctx context.Context, key string, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.read(ctx, key)
	if err != nil {
		return err
	}
	items = append(items, item)

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// readAll concatenates every list stored under prefix, in key order.
func (l *jsonList[T]) readAll(ctx context.Context, prefix string) ([]T, error) {
	keys, err := l.store.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	all := []T{}
	for _, k := range keys {
		items, err := l.read(ctx, k)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}
