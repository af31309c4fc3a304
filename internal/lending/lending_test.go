package lending_test

import (
	"context"
	"library/internal/lending"
	"library/pkg/domain"
	"library/pkg/fine"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/storage"
	"library/pkg/storage/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingChannel captures sent notifications for assertions.
type recordingChannel struct {
	recipients []string
	messages   []string
	err        error
}

func (c *recordingChannel) Send(_ context.Context, recipient string, message string) error {
	if c.err != nil {
		return c.err
	}
	c.recipients = append(c.recipients, recipient)
	c.messages = append(c.messages, message)

	return nil
}

// recordingPolicy wraps a real policy and records every evaluation.
type recordingPolicy struct {
	inner    fine.Policy
	daysSeen []int
	amounts  []int
}

func (p *recordingPolicy) Compute(daysLate int) int {
	amount := p.inner.Compute(daysLate)
	p.daysSeen = append(p.daysSeen, daysLate)
	p.amounts = append(p.amounts, amount)

	return amount
}

type fixture struct {
	store   *memory.Store
	channel *recordingChannel
	policy  *recordingPolicy
	now     time.Time
	svc     lending.Service
}

func newFixture(t *testing.T, inner fine.Policy) *fixture {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	f := &fixture{
		store:   memory.New(),
		channel: &recordingChannel{},
		policy:  &recordingPolicy{inner: inner},
		now:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	t.Cleanup(func() { _ = f.store.Close() })

	f.svc = lending.New(f.store, f.policy, f.channel, lending.Options{
		Now: func() time.Time { return f.now },
	})

	ctx := context.Background()
	_, err := f.store.StoreBooks(ctx, domain.Book{
		Title:     "1984",
		Author:    "George Orwell",
		ISBN:      "978-0452284234",
		Available: true,
	})
	require.NoError(t, err)
	_, err = f.store.StoreUsers(ctx, domain.User{ID: "u-1", Name: "Alice"})
	require.NoError(t, err)

	return f
}

func TestBorrow(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err)
	require.NotNil(t, loan)
	require.False(t, loan.Returned, "a fresh loan must start active")
	require.True(t, loan.LoanDate.Equal(f.now))
	require.True(t, loan.DueDate.Equal(f.now.Add(lending.DefaultPeriod)))

	book, err := f.store.BookByISBN(ctx, "978-0452284234")
	require.NoError(t, err)
	require.False(t, book.Available, "borrowed book must become unavailable")

	require.Len(t, f.channel.messages, 1)
	require.Equal(t, "Alice", f.channel.recipients[0])
	require.Contains(t, f.channel.messages[0], "1984")
	require.Contains(t, f.channel.messages[0], loan.DueDate.Format("Monday, 02 Jan 2006"))
}

func TestBorrowUnavailableBook(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	_, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err)
	sentBefore := len(f.channel.messages)

	loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.ErrorIs(t, err, lending.ErrBookUnavailable)
	require.Nil(t, loan)

	// no mutation and no notification
	history, err := f.svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Len(t, f.channel.messages, sentBefore)
}

func TestBorrowUnknownBookAndUser(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	_, err := f.svc.Borrow(ctx, "no-such-isbn", "u-1")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = f.svc.Borrow(ctx, "978-0452284234", "u-2")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// the book must stay available when the user lookup fails
	book, err := f.store.BookByISBN(ctx, "978-0452284234")
	require.NoError(t, err)
	require.True(t, book.Available)
}

func TestReturnOnTime(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err)

	require.NoError(t, f.svc.Return(ctx, loan.ID))

	require.Empty(t, f.policy.daysSeen, "no fine may be computed for an on-time return")

	book, err := f.store.BookByISBN(ctx, "978-0452284234")
	require.NoError(t, err)
	require.True(t, book.Available, "returned book must become available again")

	stored, err := f.store.LoanByID(ctx, loan.ID)
	require.NoError(t, err)
	require.True(t, stored.Returned)
	require.True(t, stored.ReturnedAt.Equal(f.now))
}

func TestReturnIsIdempotentFromSecondCall(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err)
	require.NoError(t, f.svc.Return(ctx, loan.ID))

	err = f.svc.Return(ctx, loan.ID)
	require.ErrorIs(t, err, lending.ErrAlreadyReturned)

	require.Empty(t, f.policy.daysSeen, "the no-op return must not compute a fine")

	book, err := f.store.BookByISBN(ctx, "978-0452284234")
	require.NoError(t, err)
	require.True(t, book.Available)
}

func TestReturnUnknownLoan(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))

	err := f.svc.Return(context.Background(), domain.LoanID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

// Late-return scenario: the due date is back-dated three days before now, so
// returning must evaluate the policy with daysLate = 3.
func TestReturnLateComputesFine(t *testing.T) {
	cases := []struct {
		name   string
		policy fine.Policy
		want   int
	}{
		{name: "standard", policy: fine.NewStandard(0), want: 30},
		{name: "discounted", policy: fine.NewDiscounted(0), want: 15},
		{name: "waived", policy: fine.Waived{}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.policy)
			ctx := context.Background()

			loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
			require.NoError(t, err)

			// simulate a late return by back-dating the due date
			backdated := f.now.Add(-3 * 24 * time.Hour)
			_, err = f.store.UpdateLoanByID(ctx, loan.ID, storage.LoanUpdates{DueDate: &backdated})
			require.NoError(t, err)

			require.NoError(t, f.svc.Return(ctx, loan.ID))

			require.Equal(t, []int{3}, f.policy.daysSeen)
			require.Equal(t, []int{tc.want}, f.policy.amounts)

			book, err := f.store.BookByISBN(ctx, "978-0452284234")
			require.NoError(t, err)
			require.True(t, book.Available)
		})
	}
}

func TestBorrowSurvivesNotificationFailure(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	f.channel.err = serrors.With(serrors.ErrInternal, "channel down")
	ctx := context.Background()

	loan, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err, "a failed send must not fail the loan")
	require.NotNil(t, loan)

	book, err := f.store.BookByISBN(ctx, "978-0452284234")
	require.NoError(t, err)
	require.False(t, book.Available)
}

func TestHistoryIsChronological(t *testing.T) {
	f := newFixture(t, fine.NewStandard(0))
	ctx := context.Background()

	_, err := f.store.StoreBooks(ctx, domain.Book{
		Title:     "Brave New World",
		Author:    "Aldous Huxley",
		ISBN:      "978-0060850524",
		Available: true,
	})
	require.NoError(t, err)

	first, err := f.svc.Borrow(ctx, "978-0452284234", "u-1")
	require.NoError(t, err)
	second, err := f.svc.Borrow(ctx, "978-0060850524", "u-1")
	require.NoError(t, err)
	require.NoError(t, f.svc.Return(ctx, first.ID))

	history, err := f.svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, first.ID, history[0].ID)
	require.Equal(t, second.ID, history[1].ID)
	require.True(t, history[0].Returned)
	require.False(t, history[1].Returned)
}
