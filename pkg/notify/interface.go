// Package notify defines the pluggable channel used to deliver messages to
// users, together with the channel variants shipped by default.
package notify

import "context"

// Channel is the abstraction for message delivery. Implementations emit the
// message through their medium (console, email, SMS) and report acceptance
// through the returned error: nil means the message was accepted for
// delivery; there is no delivery confirmation beyond that. Any variant must
// be substitutable for any other, callers may only rely on the error result.
type Channel interface {
	// Send delivers message to the named recipient.
	Send(ctx context.Context, recipient string, message string) error
}
