package main

import (
	"context"
	"errors"
	"library/internal/config"
	"library/internal/lending"
	"library/pkg/domain"
	"library/pkg/fine"
	"library/pkg/logger"
	"library/pkg/notify"
	"library/pkg/storage"
	"library/pkg/storage/memory"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seed populates the store with a small catalog and two users.
func seed(ctx context.Context, store *memory.Store) error {
	if _, err := store.StoreBooks(ctx,
		domain.Book{
			Title:     "1984",
			Author:    "George Orwell",
			ISBN:      "978-0452284234",
			Available: true,
		},
		domain.Book{
			Title:     "Brave New World",
			Author:    "Aldous Huxley",
			ISBN:      "978-0060850524",
			Available: true,
		},
	); err != nil {
		return err
	}

	_, err := store.StoreUsers(ctx,
		domain.User{ID: "u-alice", Name: "Alice"},
		domain.User{ID: "u-bob", Name: "Bob"},
	)

	return err
}

// demoCommand constructs the 'demo' subcommand that runs the lending workflow
// end to end: two services with different fine policy and notification
// channel combinations, an on-time return, and a simulated late return.
func demoCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Runs the lending workflow demonstration",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			store := memory.New()
			defer func() {
				logger.Info(ctx, "closing store...")
				if err := store.Close(); err != nil {
					logger.Warn(ctx, "could not close store", zap.Error(err))
				}
			}()

			if err := seed(ctx, store); err != nil {
				logger.Fatal(ctx, "could not seed catalog", zap.Error(err))
			}

			opts := lending.NewOptions(cfg)

			// the configured combination, and a second service to show that
			// policies and channels swap freely without touching the workflow
			configured := lending.New(store,
				newFinePolicy(cfg, cfg.Fine.Policy),
				newChannel(cfg, cfg.Notification.Channel),
				opts)
			discounted := lending.New(store,
				fine.NewDiscounted(cfg.Fine.DiscountedRate),
				notify.NewEmail(cfg.Notification.EmailFrom),
				opts)

			// on-time loan and return
			loan, err := configured.Borrow(ctx, "978-0452284234", "u-alice")
			if err != nil {
				logger.Fatal(ctx, "could not borrow book", zap.Error(err))
			}

			// borrowing the same book while it is out is refused
			if _, err := configured.Borrow(ctx, "978-0452284234", "u-bob"); errors.Is(err, lending.ErrBookUnavailable) {
				logger.Info(ctx, "borrow refused", zap.Error(err))
			}

			if err := configured.Return(ctx, loan.ID); err != nil {
				logger.Fatal(ctx, "could not return book", zap.Error(err))
			}

			// a second return of the same loan is a no-op
			if err := configured.Return(ctx, loan.ID); errors.Is(err, lending.ErrAlreadyReturned) {
				logger.Info(ctx, "return refused", zap.Error(err))
			}

			// simulate a late return by back-dating the due date three days
			late, err := discounted.Borrow(ctx, "978-0060850524", "u-bob")
			if err != nil {
				logger.Fatal(ctx, "could not borrow book", zap.Error(err))
			}
			backdated := time.Now().Add(-3 * 24 * time.Hour)
			if _, err := store.UpdateLoanByID(ctx, late.ID, storage.LoanUpdates{DueDate: &backdated}); err != nil {
				logger.Fatal(ctx, "could not back-date loan", zap.Error(err))
			}
			if err := discounted.Return(ctx, late.ID); err != nil {
				logger.Fatal(ctx, "could not return book", zap.Error(err))
			}

			history, err := configured.History(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not get loan history", zap.Error(err))
			}
			for _, l := range history {
				logger.Info(ctx, "loan record",
					zap.String("isbn", string(l.BookISBN)),
					zap.String("userID", string(l.UserID)),
					zap.Time("loanDate", l.LoanDate),
					zap.Time("dueDate", l.DueDate),
					zap.Bool("returned", l.Returned))
			}
		},
	}

	return cmd
}
