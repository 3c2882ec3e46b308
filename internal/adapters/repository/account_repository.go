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

// AccountRepository serves the seeded accounts from memory and registered
// accounts from the store.
type AccountRepository struct {
	store  ports.KeyValueStore
	logger *logging.Logger
	seeded map[string]domain.Account
	mu     sync.Mutex
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(store ports.KeyValueStore, logger *logging.Logger, seeds ...domain.Account) *AccountRepository {
	if logger == nil {
		logger = logging.Default()
	}
	seeded := make(map[string]domain.Account, len(seeds))
	for _, a := range seeds {
		seeded[normalizeEmail(a.Email)] = a
	}
	return &AccountRepository{store: store, logger: logger, seeded: seeded}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if a, ok := r.seeded[normalizeEmail(email)]; ok {
		return &a, nil
	}

	raw, err := r.store.Get(ctx, AccountKey(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		r.logger.Warn("clearing malformed account", "error", err)
		if delErr := r.store.Delete(ctx, AccountKey(email)); delErr != nil {
			return nil, fmt.Errorf("clear account: %w", delErr)
		}
		return nil, domain.ErrNotFound
	}
	return &account, nil
}

// Create stores a new account. It returns domain.ErrEmailTaken when the
// email belongs to any existing account.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.FindByEmail(ctx, account.Email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	account.Email = normalizeEmail(account.Email)
	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, AccountKey(account.Email), raw); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}
