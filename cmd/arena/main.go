// Package main is the entry point for the arena CLI
package main

import (
	"fmt"
	"os"

	"google.golang.org/grpc/status"

	"github.com/pokearena/tactics-arena/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode follows the gRPC status code of the error so scripts can tell
// a locked mode from a broken catalog
func exitCode(err error) int {
	code := int(status.Code(errors.ToGRPCError(err)))
	if code == 0 {
		return 1
	}
	return code
}
