package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/abenezerm/fintech-review-analytics/cmd/pipeline/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
