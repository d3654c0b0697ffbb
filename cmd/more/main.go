// Command more pages a file or standard input one chunk of lines at a time.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rshade/more/internal/cli"
	"github.com/rshade/more/pkg/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes the root command and returns the process exit code. Errors are
// written to stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "more: %v\n", err)
	}
	return cli.ExitCode(err)
}
