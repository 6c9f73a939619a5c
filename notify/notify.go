// Package notify abstracts push notification dispatch. Delivery is
// fire-and-forget from the callers' perspective; a failed send never rolls
// back the operation that triggered it.
package notify

import "context"

// Notifier delivers a message to a set of device tokens.
type Notifier interface {
	Send(ctx context.Context, tokens []string, title, body string) error
}

// Noop is used when notifications are disabled.
type Noop struct{}

func (Noop) Send(ctx context.Context, tokens []string, title, body string) error {
	return nil
}
