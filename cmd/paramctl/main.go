// Package main provides the paramctl CLI, a front end over the parameter
// registry's text representation. The registry core stays in pkg/params;
// paramctl wires it to a snapshot backend so values survive between
// invocations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/parambank/pkg/params"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps registry errors to the user-error exit code; anything else
// (config, snapshot db) is a system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		params.ErrUnknownKey,
		params.ErrIdentifierOutOfRange,
		params.ErrValidationFailed,
		params.ErrParseFailed,
		params.ErrMissingHook,
		params.ErrUninitialized,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
