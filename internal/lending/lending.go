package lending

import (
	"context"
	"fmt"
	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/fine"
	"library/pkg/logger"
	"library/pkg/notify"
	"library/pkg/serrors"
	"library/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Signaled workflow conditions. Both are non-fatal: callers are expected to
// check them with errors.Is and carry on.
var (
	// ErrBookUnavailable is returned by Borrow when the book is already out.
	ErrBookUnavailable = serrors.NewKind("BOOK_UNAVAILABLE")
	// ErrAlreadyReturned is returned by Return when the loan is already closed.
	ErrAlreadyReturned = serrors.NewKind("ALREADY_RETURNED")
)

// DefaultPeriod is how long a book may be kept when no period is configured.
const DefaultPeriod = 14 * 24 * time.Hour

// Options configure the loan workflow. These settings are typically derived
// from application configuration.
type Options struct {
	// Period is how long a borrowed book may be kept before it is due.
	Period time.Duration
	// Now is the clock used for loan and return timestamps. Defaults to
	// time.Now; injectable for tests.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Period: cfg.Lending.Period,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer, fine computation and
// notification dispatch.
type service struct {
	// options holds runtime configuration for the workflow.
	options Options
	// storage is the persistence layer owning the catalog and loan history.
	storage storage.Storage
	// policy converts days overdue into a penalty amount.
	policy fine.Policy
	// channel delivers due-date notifications to users.
	channel notify.Channel
}

// Borrow checks that the book is available, marks it as out, appends a loan
// record with the due date set Period after now, and notifies the user. When
// the book is already on loan it fails with ErrBookUnavailable without
// mutating anything or sending a notification.
func (s service) Borrow(ctx context.Context, isbn domain.ISBN, userID domain.UserID) (*domain.Loan, error) {
	book, err := s.storage.BookByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("could not get book: %w", err)
	}
	if book == nil {
		return nil, serrors.With(serrors.ErrNotFound, "book %s not found", isbn)
	}
	if !book.Available {
		return nil, serrors.With(ErrBookUnavailable, "book %q is currently on loan", book.Title)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %s not found", userID)
	}

	now := s.options.Now()
	stored, err := s.storage.StoreLoans(ctx, domain.Loan{
		ID:       domain.LoanID(uuid.New()),
		BookISBN: book.ISBN,
		UserID:   user.ID,
		LoanDate: now,
		DueDate:  now.Add(s.options.Period),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store loan: %w", err)
	}
	loan := &stored[0]

	if _, err := s.storage.SetBookAvailability(ctx, book.ISBN, false); err != nil {
		return nil, fmt.Errorf("could not mark book unavailable: %w", err)
	}

	// fire-and-forget: a failed send is logged, never escalated or retried
	message := fmt.Sprintf("You have borrowed %q by %s. It is due back on %s.",
		book.Title, book.Author, loan.DueDate.Format("Monday, 02 Jan 2006"))
	if err := s.channel.Send(ctx, user.Name, message); err != nil {
		logger.Warn(ctx, "could not send loan notification", zap.Error(err))
	}

	logger.Info(ctx, "loan created",
		zap.String("isbn", string(book.ISBN)),
		zap.String("userID", string(user.ID)),
		zap.Time("dueDate", loan.DueDate))

	return loan, nil
}

// Return closes an active loan: when the return is past the due date it
// evaluates the fine policy for the whole days late (the amount is
// informational and only logged), then marks the loan returned and the book
// available again. Returning an already closed loan is a no-op signaled with
// ErrAlreadyReturned.
func (s service) Return(ctx context.Context, loanID domain.LoanID) error {
	loan, err := s.storage.LoanByID(ctx, loanID)
	if err != nil {
		return fmt.Errorf("could not get loan: %w", err)
	}
	if loan == nil {
		return serrors.With(serrors.ErrNotFound, "loan %s not found", uuid.UUID(loanID))
	}
	if loan.Returned {
		return serrors.With(ErrAlreadyReturned, "loan %s is already returned", uuid.UUID(loanID))
	}

	now := s.options.Now()
	if now.After(loan.DueDate) {
		daysLate := DaysLate(loan.DueDate, now)
		amount := s.policy.Compute(daysLate)
		logger.Info(ctx, "late return",
			zap.String("isbn", string(loan.BookISBN)),
			zap.Int("daysLate", daysLate),
			zap.Int("fine", amount))
	}

	returned := true
	if _, err := s.storage.UpdateLoanByID(ctx, loanID, storage.LoanUpdates{
		Returned:   &returned,
		ReturnedAt: &now,
	}); err != nil {
		return fmt.Errorf("could not update loan: %w", err)
	}

	if _, err := s.storage.SetBookAvailability(ctx, loan.BookISBN, true); err != nil {
		return fmt.Errorf("could not mark book available: %w", err)
	}

	logger.Info(ctx, "book returned",
		zap.String("isbn", string(loan.BookISBN)),
		zap.String("userID", string(loan.UserID)))

	return nil
}

// History returns the append-only loan sequence in chronological order.
func (s service) History(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.storage.Loans(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get loan history: %w", err)
	}

	return loans, nil
}

// New creates a new Service backed by the provided storage, fine policy and
// notification channel, configured with the given options.
func New(storage storage.Storage, policy fine.Policy, channel notify.Channel, options Options) Service {
	if options.Period <= 0 {
		options.Period = DefaultPeriod
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{
		options: options,
		storage: storage,
		policy:  policy,
		channel: channel,
	}
}
