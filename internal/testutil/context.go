package testutil

import "context"

// SetupContext returns the base context used by tests
func SetupContext() context.Context {
	return context.Background()
}
