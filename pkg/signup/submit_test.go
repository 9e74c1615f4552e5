package signup_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signupkit/pkg/signup"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateAccount(ctx context.Context, account *signup.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func fastSubmitter(opts ...signup.SubmitterOption) *signup.Submitter {
	base := []signup.SubmitterOption{
		signup.WithDelay(0),
		signup.WithBcryptCost(bcrypt.MinCost),
		signup.WithOutcome(signup.AlwaysSucceed),
	}
	return signup.NewSubmitter(append(base, opts...)...)
}

func TestSubmitter_Submit(t *testing.T) {
	t.Parallel()

	t.Run("creates account", func(t *testing.T) {
		store := signup.NewMemoryStore()
		var logs bytes.Buffer
		s := fastSubmitter(
			signup.WithAccountStore(store),
			signup.WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
		)

		account, err := s.Submit(context.Background(), validValues)
		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "Jane Doe", account.Name)
		assert.Equal(t, "jane@example.com", account.Email)
		assert.False(t, account.CreatedAt.IsZero())
		assert.True(t, account.PasswordMatches("Abc12345!"))
		assert.False(t, account.PasswordMatches("Abc12345?"))

		stored, err := store.GetAccountByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, account.ID, stored.ID)
		assert.Contains(t, logs.String(), `"account_id":"`+account.ID.String()+`"`)
	})

	t.Run("invalid form never reaches the store", func(t *testing.T) {
		store := &mockStore{}
		s := fastSubmitter(signup.WithAccountStore(store))

		_, err := s.Submit(context.Background(), signup.Values{Name: "Jane Doe"})
		require.ErrorIs(t, err, signup.ErrInvalidForm)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email", "password"}, verrs.Fields())
		store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("rejected outcome", func(t *testing.T) {
		store := &mockStore{}
		s := fastSubmitter(signup.WithAccountStore(store), signup.WithOutcome(signup.AlwaysFail))

		_, err := s.Submit(context.Background(), validValues)
		assert.ErrorIs(t, err, signup.ErrSubmissionFailed)
		store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := fastSubmitter()

		_, err := s.Submit(context.Background(), validValues)
		require.NoError(t, err)
		_, err = s.Submit(context.Background(), validValues)
		assert.ErrorIs(t, err, signup.ErrEmailTaken)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		boom := errors.New("disk full")
		store := &mockStore{}
		store.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a *signup.Account) bool {
			return a.Email == validValues.Email
		})).Return(boom).Once()

		_, err := fastSubmitter(signup.WithAccountStore(store)).Submit(context.Background(), validValues)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, signup.ErrEmailTaken)
		store.AssertExpectations(t)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		s := fastSubmitter(signup.WithDelay(time.Hour))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := s.Submit(ctx, validValues)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("outcome sees the request context", func(t *testing.T) {
		type key struct{}
		var seen any
		outcome := signup.OutcomeFunc(func(ctx context.Context) bool {
			seen = ctx.Value(key{})
			return false
		})

		ctx := context.WithValue(context.Background(), key{}, "marker")
		_, err := fastSubmitter(signup.WithOutcome(outcome)).Submit(ctx, validValues)
		assert.ErrorIs(t, err, signup.ErrSubmissionFailed)
		assert.Equal(t, "marker", seen)
	})
}

func TestSubmitter_LongPasswords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
	}{
		{"73 bytes", "Abc12345!" + strings.Repeat("x", 64)},
		{"1024 characters", "Abc12345!" + strings.Repeat("x", 1015)},
		{"multibyte over 72 bytes", "Abc12345!" + strings.Repeat("ł", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := signup.Values{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Password: tt.password,
				Confirm:  tt.password,
			}
			require.Greater(t, len(tt.password), 72)
			require.True(t, signup.IsFormValid(values))

			account, err := fastSubmitter().Submit(context.Background(), values)
			require.NoError(t, err)
			assert.True(t, account.PasswordMatches(tt.password))
			assert.False(t, account.PasswordMatches(tt.password[:72]), "bytes past 72 still count")

			_, err = fastSubmitter(signup.WithOutcome(signup.AlwaysFail)).Submit(context.Background(), values)
			assert.ErrorIs(t, err, signup.ErrSubmissionFailed)
		})
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := signup.HashPassword("Abc12345!", bcrypt.MinCost)
	require.NoError(t, err)

	account := &signup.Account{PasswordHash: hash}
	assert.True(t, account.PasswordMatches("Abc12345!"))
	assert.False(t, account.PasswordMatches(""))
	assert.False(t, (&signup.Account{}).PasswordMatches("Abc12345!"))

	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestSubmitter_Delay(t *testing.T) {
	t.Parallel()

	s := fastSubmitter(signup.WithDelay(50 * time.Millisecond))
	start := time.Now()
	_, err := s.Submit(context.Background(), validValues)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSubmitter_SubmitAsync(t *testing.T) {
	t.Parallel()

	future := fastSubmitter().SubmitAsync(context.Background(), validValues)
	account, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, validValues.Email, account.Email)
	assert.True(t, future.IsComplete())
}

func TestRandomOutcome(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for range 100 {
		assert.True(t, signup.RandomOutcome(1).Succeed(ctx))
		assert.False(t, signup.RandomOutcome(0).Succeed(ctx))
		assert.True(t, signup.RandomOutcome(7).Succeed(ctx), "rate is clamped to 1")
		assert.False(t, signup.RandomOutcome(-1).Succeed(ctx), "rate is clamped to 0")
	}

	successes := 0
	outcome := signup.RandomOutcome(signup.DefaultSuccessRate)
	for range 2000 {
		if outcome.Succeed(ctx) {
			successes++
		}
	}
	// expected 1400
	assert.InDelta(t, 1400, successes, 150)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := signup.NewMemoryStore()

	assert.ErrorIs(t, store.CreateAccount(ctx, nil), signup.ErrNilAccount)

	account := &signup.Account{Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, store.CreateAccount(ctx, account))
	assert.ErrorIs(t, store.CreateAccount(ctx, &signup.Account{Email: "jane@example.com"}), signup.ErrEmailTaken)
	require.NoError(t, store.CreateAccount(ctx, &signup.Account{Email: "Jane@example.com"}), "emails are keyed verbatim")

	account.Name = "changed"
	stored, err := store.GetAccountByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", stored.Name, "store keeps its own copy")

	_, err = store.GetAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, signup.ErrAccountNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Ping(cancelled), context.Canceled)
	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := signup.NewMemoryStore()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if errors.Is(store.CreateAccount(ctx, &signup.Account{Email: "same@example.com"}), signup.ErrEmailTaken) {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 19, taken)
}
