// Command badgerender renders notification badges to PNG images.
//
// Usage:
//
//	badgerender render --text 7 --parent 64x64 --out badge.png
//	badgerender animate --from 9 --to 10 --frames 12 --out frames/
//	badgerender inspect --text 99+ --style badge.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
