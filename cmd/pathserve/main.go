// Command pathserve exposes the instance registry, the generator and
// the benchmark harness over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pathserve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := fs.String("addr", ":8080", "listen address")
	graphDir := fs.String("graphs", "", "directory of instances preloaded at startup")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.TimeOnly
	})).With().Timestamp().Logger()

	srv := newServer(logger)
	if *graphDir != "" {
		if err := srv.loadDir(*graphDir); err != nil {
			logger.Error().Err(err).Msg("failed to preload instances")
			return 1
		}
	}

	logger.Info().
		Str("addr", *addr).
		Msg("serving GET /health, GET|POST /graphs, POST /generate, POST /bench")
	if err := http.ListenAndServe(*addr, srv.routes()); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return 1
	}
	return 0
}
