package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/logger"
	"github.com/julianstephens/hurryup/internal/proxy"
)

// ServeCmd runs the text-improvement proxy until interrupted.
type ServeCmd struct {
	Listen string `help:"Address to listen on. Defaults to proxy.listen from the config."`
	Model  string `help:"Anthropic model to use. Defaults to proxy.model from the config."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	opts := proxy.OptionsFromConfig(ctx.Config)
	if c.Model != "" {
		opts.Model = c.Model
	}
	if opts.APIKey == "" {
		logger.Warn("no API key configured; requests will fail until one is set")
	}

	addr := ctx.Config.Proxy.Listen
	if c.Listen != "" {
		addr = c.Listen
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Improvement proxy listening on http://%s (model %s)\n", addr, opts.Model)
	if err := proxy.New(opts).Serve(sigCtx, addr); err != nil {
		return fmt.Errorf("proxy server failed: %w", err)
	}
	fmt.Println("Proxy stopped.")
	return nil
}
