// Command formkit validates form submissions against a schema, from the
// command line or over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}
	if !errors.Is(err, errFormInvalid) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
