package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tripsync/backend/internal/credential"
	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/remote"
)

// AccountStore manages registered users and the current-session record.
// Email uniqueness is exact-match: addresses differing only in case are
// distinct accounts.
type AccountStore struct {
	mu     sync.Mutex
	kv     kv.Store
	ids    identity.Generator
	log    *slog.Logger
	creds  credential.Store
	sim    *remote.Simulator
	now    func() time.Time
	users  []domain.UserAccount
	loaded bool
}

// NewAccountStore constructs an AccountStore over the given kv backend.
func NewAccountStore(kvs kv.Store, ids identity.Generator, creds credential.Store, sim *remote.Simulator, log *slog.Logger) *AccountStore {
	return &AccountStore{kv: kvs, ids: ids, log: log, creds: creds, sim: sim, now: time.Now}
}

func (s *AccountStore) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.users = loadCollection[domain.UserAccount](ctx, s.kv, s.log, kv.UsersKey)
	s.loaded = true
}

// SignUp validates the form, rejects already-registered emails, and creates
// the account. The new account immediately becomes the current user. The
// returned account is NOT redacted — callers hand it to Redacted() before
// serializing a response.
func (s *AccountStore) SignUp(ctx context.Context, fullName, email, password string) (domain.UserAccount, error) {
	if err := domain.ValidateSignUp(fullName, email, password).OrNil(); err != nil {
		return domain.UserAccount{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, u := range s.users {
		if u.Email == email {
			return domain.UserAccount{}, fmt.Errorf("store.AccountStore.SignUp: %w",
				domain.ConflictError{Message: "An account with this email already exists"})
		}
	}

	s.sim.Wait()

	sealed, err := s.creds.Seal(password)
	if err != nil {
		return domain.UserAccount{}, fmt.Errorf("store.AccountStore.SignUp: %w", err)
	}

	user := domain.UserAccount{
		ID:        s.ids.NewID(),
		FullName:  strings.TrimSpace(fullName),
		Email:     email,
		Password:  sealed,
		CreatedAt: s.now().UTC(),
	}

	s.users = append(s.users, user)
	writeThrough(ctx, s.kv, s.log, kv.UsersKey, s.users)
	writeThrough(ctx, s.kv, s.log, kv.CurrentUserKey, user)
	return user, nil
}

// LogIn verifies the credentials and makes the account the current user.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AccountStore) LogIn(ctx context.Context, email, password string) (domain.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	s.sim.Wait()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if err := s.creds.Verify(u.Password, password); err != nil {
			return domain.UserAccount{}, fmt.Errorf("store.AccountStore.LogIn: %w", domain.ErrInvalidCredentials)
		}
		writeThrough(ctx, s.kv, s.log, kv.CurrentUserKey, u)
		return u, nil
	}
	return domain.UserAccount{}, fmt.Errorf("store.AccountStore.LogIn: %w", domain.ErrInvalidCredentials)
}

// Current returns the current user, or ErrNotFound when no one is signed in.
func (s *AccountStore) Current(ctx context.Context) (domain.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := kv.GetJSON[domain.UserAccount](ctx, s.kv, kv.CurrentUserKey)
	if err != nil {
		if errors.Is(err, kv.ErrNoRecord) {
			return domain.UserAccount{}, fmt.Errorf("store.AccountStore.Current: %w", domain.ErrNotFound)
		}
		return domain.UserAccount{}, fmt.Errorf("store.AccountStore.Current: %w", err)
	}
	return user, nil
}

// SignOut clears the current-session record. Signing out while signed out is
// a no-op, not an error.
func (s *AccountStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, kv.CurrentUserKey); err != nil {
		return fmt.Errorf("store.AccountStore.SignOut: %w", err)
	}
	return nil
}
