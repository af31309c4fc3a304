package fine

const (
	// DefaultStandardRate is the per-day penalty of the standard policy.
	DefaultStandardRate = 10
	// DefaultDiscountedRate is the per-day penalty of the discounted policy.
	DefaultDiscountedRate = 5
)

// Standard charges a flat per-day rate for every day a book is overdue.
type Standard struct {
	// Rate is the penalty per day in currency units.
	Rate int
}

// NewStandard creates the standard policy with the given per-day rate.
// A non-positive rate falls back to DefaultStandardRate.
func NewStandard(rate int) Standard {
	if rate <= 0 {
		rate = DefaultStandardRate
	}

	return Standard{Rate: rate}
}

// Compute returns Rate for every day late.
func (p Standard) Compute(daysLate int) int {
	if daysLate <= 0 {
		return 0
	}

	return p.Rate * daysLate
}

// Discounted charges a reduced per-day rate, e.g. for members of the
// library's reduced-fee program.
type Discounted struct {
	// Rate is the reduced penalty per day in currency units.
	Rate int
}

// NewDiscounted creates the discounted policy with the given per-day rate.
// A non-positive rate falls back to DefaultDiscountedRate.
func NewDiscounted(rate int) Discounted {
	if rate <= 0 {
		rate = DefaultDiscountedRate
	}

	return Discounted{Rate: rate}
}

// Compute returns Rate for every day late.
func (p Discounted) Compute(daysLate int) int {
	if daysLate <= 0 {
		return 0
	}

	return p.Rate * daysLate
}

// Waived never charges anything, regardless of how late the return is.
type Waived struct{}

// Compute always returns zero.
func (Waived) Compute(int) int { return 0 }

// interface checks
var (
	_ Policy = Standard{}
	_ Policy = Discounted{}
	_ Policy = Waived{}
)
