// Package cli holds the command context shared by the hurryup subcommands.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/hurryup/internal/config"
	"github.com/julianstephens/hurryup/internal/improve"
	"github.com/julianstephens/hurryup/internal/logger"
	"github.com/julianstephens/hurryup/internal/router"
	"github.com/julianstephens/hurryup/internal/session"
)

// Stdin is read by Confirm and ReadInput.
var Stdin io.Reader = os.Stdin

type Context struct {
	Config *config.Config

	sess *session.Session
}

// Session opens the stored state on first use. Commands that never touch
// report data (the proxy server, keyring management) never open it.
func (c *Context) Session() (*session.Session, error) {
	if c.sess != nil {
		return c.sess, nil
	}
	s, err := session.Open(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	s.Start(router.App.Path())
	c.sess = s
	return s, nil
}

// Onboarded opens the session and fails when setup has not been completed.
func (c *Context) Onboarded() (*session.Session, error) {
	s, err := c.Session()
	if err != nil {
		return nil, err
	}
	if !s.State().OnboardingComplete {
		return nil, errors.New("hurryup is not set up yet. Run 'hurryup init' or 'hurryup tui' first")
	}
	return s, nil
}

// SetSession installs an already open session.
func (c *Context) SetSession(s *session.Session) { c.sess = s }

// Improver returns a client for the configured text-improvement proxy.
func (c *Context) Improver() *improve.Client {
	return improve.New(c.Config.Improve.URL, c.Config.Improve.Timeout)
}

// Close releases the session if one was opened.
func (c *Context) Close() {
	if c.sess == nil {
		return
	}
	if err := c.sess.Close(); err != nil {
		logger.Warn("failed to close storage", "error", err)
	}
	c.sess = nil
}

// PerformAutomaticBackup snapshots the current state and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	s, err := c.Session()
	if err != nil {
		return
	}
	if _, err := s.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm asks a yes/no question on stdout and reads the answer from Stdin.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(Stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// ReadInput returns text from a literal flag value, a file, or Stdin when
// file is "-". It returns "" when neither is given.
func ReadInput(text, file string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file == "-":
		data, err := io.ReadAll(Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	return "", nil
}
