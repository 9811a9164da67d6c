// Command cruiseroute orders oceanographic stations into a cruise track.
//
//	cruiseroute order --input stations.xlsx [--output ordered.xlsx] [--geojson track.geojson]
//	cruiseroute serve [--addr :8080]
//
// Settings come from flags, CRUISEROUTE_* environment variables and an
// optional cruiseroute.yaml; see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

const usage = `usage: cruiseroute <command> [flags]

commands:
  order   read a station sheet, order it and write the track
  serve   run the HTTP service

run "cruiseroute <command> --help" for command flags
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "order":
		err = runOrder(ctx, args[1:], stdout, stderr)
	case "serve":
		err = runServe(ctx, args[1:], stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "cruiseroute %s: %v\n", args[0], err)
		return 1
	}

	return 0
}
