// Command lexicon inspects locale-keyed translation documents from the
// command line. Lookups fall back to the default locale like the library.
//
// The document comes from a file, a Redis key or an S3 object, configured
// with flags or LEXICON_* environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
