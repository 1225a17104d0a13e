// SPDX-License-Identifier: Unlicense OR MIT

// Command pickerd serves previews of circular pickers.
//
// Usage:
//
//	pickerd [-addr :8080] [-attrs picker.toml] [-dpi 160]
//
// Create a session with POST /pickers, optionally with a TOML body of
// attributes, then drive it with PUT /pickers/{id}/value and POST
// /pickers/{id}/touches. GET /pickers/{id}/image.png renders it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/circled-gio/circled/attr"
	"github.com/circled-gio/circled/density"
	"github.com/circled-gio/circled/internal/preview"
)

var (
	addr  = flag.String("addr", ":8080", "listen address")
	attrs = flag.String("attrs", "", "TOML file with default picker attributes")
	dpi   = flag.Int("dpi", 160, "screen density for converting dp and sp to pixels")
)

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "pickerd: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *dpi <= 0 {
		return fmt.Errorf("invalid -dpi %d", *dpi)
	}
	defaults := attr.Default()
	if *attrs != "" {
		var err error
		if defaults, err = attr.Load(*attrs); err != nil {
			return err
		}
	}
	// Reject bad defaults at startup instead of on every session.
	if _, err := defaults.Resolve(); err != nil {
		return err
	}
	s := preview.NewServer(density.Metric(*dpi, *dpi), defaults)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("pickerd: listening on %s", *addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	})
	return g.Wait()
}
