package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns a context cancelled on SIGINT/SIGTERM so every provider can
// hang its cleanup off it.
func New() (context.Context, func(), error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx, stop, nil
}
