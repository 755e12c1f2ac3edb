// Package context holds the timeout used around blocking startup and
// health operations.
package context

import (
	"context"
	"time"
)

// DefaultPingTimeout bounds one connectivity check.
const DefaultPingTimeout = 5 * time.Second

// WithPingTimeout bounds a connectivity check made at startup.
func WithPingTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DefaultPingTimeout)
}
