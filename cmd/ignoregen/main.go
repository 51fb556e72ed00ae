// Package main is the entry point for the ignoregen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/ignoregen/internal/cmd"
	oerrors "github.com/opmodel/ignoregen/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Printed {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
