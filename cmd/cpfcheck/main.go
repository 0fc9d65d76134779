package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// main wires the command tree and maps errors to exit codes. Validation logic
// lives in pkg/cpf and internal/validation.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errInvalidFound):
		stop()
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
