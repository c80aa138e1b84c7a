// Command studydesk-store runs the remote store behind the studydesk web
// client and offers a few administration subcommands.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
