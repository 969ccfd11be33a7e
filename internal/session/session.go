// Package session owns the application state for one interactive run and
// threads it through the store, the editor surface, the attachment buffer
// and the router. Every mutating operation persists before it returns.
package session

import (
	"context"
	"time"

	"github.com/julianstephens/hurryup/internal/backup"
	"github.com/julianstephens/hurryup/internal/config"
	"github.com/julianstephens/hurryup/internal/editor"
	"github.com/julianstephens/hurryup/internal/htmltext"
	"github.com/julianstephens/hurryup/internal/imaging"
	"github.com/julianstephens/hurryup/internal/logger"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/report"
	"github.com/julianstephens/hurryup/internal/router"
	"github.com/julianstephens/hurryup/internal/storage"
)

type Session struct {
	store       *storage.Store
	state       *models.AppState
	surface     editor.Surface
	attachments *imaging.Buffer
	router      *router.Router
	wizard      *router.Wizard
	backups     *backup.Manager
	now         func() time.Time

	// LastSave is the result of the most recent successful persist.
	LastSave storage.SaveResult
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithSurface(surface editor.Surface) Option {
	return func(s *Session) { s.surface = surface }
}

func WithBackups(m *backup.Manager) Option {
	return func(s *Session) { s.backups = m }
}

// New loads state from store, or starts from first-run defaults when the
// store is empty, and fills the surface with the draft for any saved
// selection.
func New(store *storage.Store, opts ...Option) (*Session, error) {
	s := &Session{
		store:       store,
		attachments: imaging.NewBuffer(),
		wizard:      router.NewWizard(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.surface == nil {
		s.surface = editor.New(true)
	}

	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	if state == nil {
		logger.Debug("no saved state, starting fresh")
		state = models.NewAppState()
	}
	s.state = state

	s.router = router.New(func() bool { return s.state.OnboardingComplete })
	s.router.OnEnterOnboarding = s.wizard.Reset
	s.RefreshDraft()
	return s, nil
}

// Open builds a session from configuration.
func Open(cfg *config.Config) (*Session, error) {
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	s, err := New(store,
		WithSurface(editor.New(cfg.Editor.Rich)),
		WithBackups(backup.NewManager(cfg.DataDir)),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) Close() error { return s.store.Close() }

func (s *Session) State() *models.AppState        { return s.state }
func (s *Session) Surface() editor.Surface        { return s.surface }
func (s *Session) Attachments() *imaging.Buffer   { return s.attachments }
func (s *Session) Router() *router.Router         { return s.router }
func (s *Session) Wizard() *router.Wizard         { return s.wizard }
func (s *Session) Backups() *backup.Manager       { return s.backups }
func (s *Session) Now() time.Time                 { return s.now() }
func (s *Session) Draft() report.Draft            { return report.UpdateDraft(s.state.Projects, s.state.SelectedProjects) }
func (s *Session) Stats() report.Stats            { return report.ComputeStats(s.state, s.now()) }
func (s *Session) ProjectLinks() []models.Project { return report.ProjectLinks(s.state) }

// Start resolves the initial route.
func (s *Session) Start(fragment string) router.Route {
	return s.router.Start(fragment)
}

// Persist saves the current state. A failed save keeps the in-memory state.
func (s *Session) Persist() error {
	res, err := s.store.Save(s.state)
	if err != nil {
		logger.Error("failed to save state", "error", err)
		return err
	}
	if res.Culled != storage.CullNone {
		logger.Warn("storage full, report images removed", "culled", res.Culled)
	}
	s.LastSave = res
	return nil
}

// RefreshDraft regenerates the draft from the selection and loads it into
// the surface. Hand edits to the surface are replaced.
func (s *Session) RefreshDraft() {
	report.Fill(s.surface, s.Draft())
}

// Improve sends the surface text to the improvement service and replaces the
// surface content with the result. On error the surface is left as it was.
func (s *Session) Improve(ctx context.Context, improver Improver) error {
	improved, err := improver.Improve(ctx, s.surface.Text())
	if err != nil {
		logger.Warn("text improvement failed", "error", err)
		return err
	}
	s.ApplyImproved(improved)
	return nil
}

// ApplyImproved replaces the surface content with rewritten plain text.
func (s *Session) ApplyImproved(text string) {
	s.surface.SetContent(htmltext.FromPlain(text))
}

// Improver rewrites report text.
type Improver interface {
	Improve(ctx context.Context, content string) (string, error)
}
