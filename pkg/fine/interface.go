// Package fine defines the pluggable policy used to convert days overdue into
// a monetary penalty, together with the policy variants shipped by default.
package fine

// Policy is the abstraction for fine computation. Implementations map a
// number of whole days past the due date to a penalty amount in currency
// units. Compute must be pure: no side effects, no failure modes, and a
// non-negative result for any non-negative input. New pricing schemes are
// added by implementing this interface, never by modifying existing variants.
type Policy interface {
	// Compute returns the penalty for the given number of whole days late.
	// daysLate is never negative; zero days late always costs zero.
	Compute(daysLate int) int
}
