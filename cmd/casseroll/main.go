// CasseROLL: a casserole dice roller for the terminal.
//
// Usage:
//
//	casseroll play [--cuisine X] [--chaos]
//	casseroll roll [--cuisine X] [--chaos] [-n N] [--seed N] [--format text|json]
//	casseroll pool <category> [--cuisine X] [--chaos]
//	casseroll catalog
package main

import (
	"fmt"
	"os"

	"github.com/hammamikhairi/casseroll/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
