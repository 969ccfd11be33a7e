// Package proxy serves the text-improvement endpoint. It forwards report
// text to the Anthropic Messages API with the server-held key and never
// stores what it forwards.
package proxy

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/julianstephens/hurryup/internal/config"
	"github.com/julianstephens/hurryup/internal/keyring"
	"github.com/julianstephens/hurryup/internal/logger"
)

const keyHelp = "Set ANTHROPIC_API_KEY, proxy.api_key in the config file, or run 'hurryup proxy key set'"

type Options struct {
	APIKey   string
	Model    string
	Upstream string
	Client   *http.Client
}

type Server struct {
	opts   Options
	client *http.Client
	engine *gin.Engine
}

// OptionsFromConfig builds server options, falling back to the OS keyring
// when neither the environment nor the config file holds a key.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:   ResolveAPIKey(cfg.Proxy.APIKey),
		Model:    cfg.Proxy.Model,
		Upstream: cfg.Proxy.Upstream,
	}
}

// ResolveAPIKey returns configured, or the keyring value when configured is empty.
func ResolveAPIKey(configured string) string {
	if configured != "" {
		return configured
	}
	key, err := keyring.GetAPIKey()
	if err != nil {
		logger.Debug("no API key in keyring", "error", err)
		return ""
	}
	return key
}

func New(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	s := &Server{opts: opts, client: client}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))
	r.Any("/*path", s.improve)
	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("proxy listening", "addr", addr, "model", s.opts.Model)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type improveRequest struct {
	Content string `json:"content"`
}

func (s *Server) improve(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if s.opts.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured", "details": keyHelp})
		return
	}

	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request", "details": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing content"})
		return
	}

	res, err := s.callUpstream(c.Request.Context(), req.Content)
	if err != nil {
		logger.Error("upstream call failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request", "details": err.Error()})
		return
	}
	if !res.ok() {
		logger.Warn("upstream rejected request", "status", res.Status)
		c.JSON(res.Status, gin.H{"error": "Anthropic API error", "details": res.errorDetails()})
		return
	}

	text := res.text()
	if text == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid API response", "details": "No content in response"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"improved": text})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
