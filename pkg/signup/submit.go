package signup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signupkit/pkg/async"
	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// Status messages shown around a submission.
const (
	MessageSubmitting   = "Submitting..."
	MessageSubmitted    = "Account created successfully 🎉"
	MessageSubmitFailed = "Something went wrong. Try again."
)

const (
	// DefaultSubmitDelay is how long a submission is held before its outcome is decided.
	DefaultSubmitDelay = 1500 * time.Millisecond
	// DefaultSuccessRate is the share of submissions RandomOutcome lets through.
	DefaultSuccessRate = 0.7
)

// Outcome decides whether a valid submission is accepted.
type Outcome interface {
	Succeed(ctx context.Context) bool
}

// OutcomeFunc adapts a function to Outcome.
type OutcomeFunc func(ctx context.Context) bool

func (f OutcomeFunc) Succeed(ctx context.Context) bool {
	return f(ctx)
}

var (
	// AlwaysSucceed accepts every submission.
	AlwaysSucceed Outcome = OutcomeFunc(func(context.Context) bool { return true })
	// AlwaysFail rejects every submission.
	AlwaysFail Outcome = OutcomeFunc(func(context.Context) bool { return false })
)

// RandomOutcome accepts a submission with probability successRate,
// clamped to [0, 1].
func RandomOutcome(successRate float64) Outcome {
	successRate = min(max(successRate, 0), 1)
	return OutcomeFunc(func(context.Context) bool {
		return rand.Float64() < successRate
	})
}

// Submitter validates a form, waits out the submission delay, asks its
// Outcome for a verdict and registers the account on success.
type Submitter struct {
	outcome    Outcome
	delay      time.Duration
	store      AccountStore
	bcryptCost int
	logger     *slog.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithOutcome sets the outcome provider. Nil is ignored.
func WithOutcome(o Outcome) SubmitterOption {
	return func(s *Submitter) {
		if o != nil {
			s.outcome = o
		}
	}
}

// WithDelay sets the submission delay. Zero disables it; negative values are ignored.
func WithDelay(d time.Duration) SubmitterOption {
	return func(s *Submitter) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithAccountStore sets where accounts are persisted. Nil is ignored.
func WithAccountStore(store AccountStore) SubmitterOption {
	return func(s *Submitter) {
		if store != nil {
			s.store = store
		}
	}
}

// WithBcryptCost sets the bcrypt cost used for password hashes.
func WithBcryptCost(cost int) SubmitterOption {
	return func(s *Submitter) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSubmitter returns a Submitter that, unless configured otherwise, waits
// DefaultSubmitDelay, succeeds DefaultSuccessRate of the time and keeps
// accounts in a MemoryStore.
func NewSubmitter(opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		outcome:    RandomOutcome(DefaultSuccessRate),
		delay:      DefaultSubmitDelay,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	return s
}

// Submit registers the signup described by values.
//
// Invalid values fail immediately with ErrInvalidForm joined with the
// validator.ValidationErrors listing each failing field. A cancelled context
// aborts the wait with ctx.Err(). A rejected outcome returns ErrSubmissionFailed.
func (s *Submitter) Submit(ctx context.Context, values Values) (*Account, error) {
	if err := Validate(values); err != nil {
		return nil, errors.Join(ErrInvalidForm, err)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if !s.outcome.Succeed(ctx) {
		s.logger.WarnContext(ctx, "signup submission rejected",
			logger.Component("signup"),
			logger.Event("submission_rejected"),
		)
		return nil, ErrSubmissionFailed
	}

	hash, err := HashPassword(values.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:           uuid.New(),
		Name:         values.Name,
		Email:        values.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		logger.AccountID(account.ID.String()),
		logger.Component("signup"),
		logger.Event("account_created"),
	)

	return account, nil
}

// SubmitAsync runs Submit in its own goroutine.
func (s *Submitter) SubmitAsync(ctx context.Context, values Values) *async.Future[*Account] {
	return async.Async(ctx, values, s.Submit)
}

func (s *Submitter) wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
