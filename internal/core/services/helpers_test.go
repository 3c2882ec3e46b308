package services

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/repository"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/storage"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var (
	keyOnce sync.Once
	testKey *rsa.PrivateKey
)

func signingKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	keyOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = k
	})
	return testKey
}

type authFixture struct {
	svc      *AuthService
	store    *storage.MemoryStore
	sessions *repository.SessionRepository
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	seeds, err := SeedAccounts(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed accounts: %v", err)
	}
	store := storage.NewMemoryStore()
	sessions := repository.NewSessionRepository(store, logging.Discard())
	accounts := repository.NewAccountRepository(store, logging.Discard(), seeds...)
	svc := NewAuthService(accounts, sessions, signingKey(t), &signingKey(t).PublicKey, DefaultSessionTTL, nil, logging.Discard()).
		WithHashCost(bcrypt.MinCost)
	return authFixture{svc: svc, store: store, sessions: sessions}
}

// sequence returns an intn that yields vals in order, then zeros.
func sequence(vals ...int) func(int) int {
	i := 0
	return func(n int) int {
		if i >= len(vals) {
			return 0
		}
		v := vals[i] % n
		i++
		return v
	}
}
