package signup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Account is a registered signup.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AccountStore persists accounts created by a successful submission.
type AccountStore interface {
	// CreateAccount stores account. It returns ErrEmailTaken when an account
	// with the same email already exists.
	CreateAccount(ctx context.Context, account *Account) error
}

// MemoryStore is an AccountStore kept in process memory.
// Emails are keyed verbatim, matching the case-sensitive signup rules.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*Account)}
}

func (s *MemoryStore) CreateAccount(ctx context.Context, account *Account) error {
	if account == nil {
		return ErrNilAccount
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.Email]; exists {
		return ErrEmailTaken
	}
	stored := *account
	s.accounts[account.Email] = &stored
	return nil
}

// GetAccountByEmail returns a copy of the account registered with email.
func (s *MemoryStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	found := *account
	return &found, nil
}

// Len returns the number of stored accounts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Ping reports whether the store can serve requests.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
