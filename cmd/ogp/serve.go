package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ogpchi "github.com/inutamago-dogegg/ogp/chi"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := ogpchi.NewServer(deps.Previewer, deps.Logger, ogpchi.WithAllowedOrigins(c.AllowOrigin))

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
