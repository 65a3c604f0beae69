// SPDX-License-Identifier: EPL-2.0

// Command audiofile probes, converts and edits audio files through the
// audiofile package.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sethvargo/go-envconfig"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand(envconfig.OsLookuper()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
