package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/hurryup/internal/backup"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/heatmap"
	"github.com/julianstephens/hurryup/internal/imaging"
	"github.com/julianstephens/hurryup/internal/logger"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/report"
	"github.com/julianstephens/hurryup/internal/router"
	"github.com/julianstephens/hurryup/internal/settings"
)

// ErrNoBackups is returned by restore operations when no backup manager is set.
var ErrNoBackups = errors.New("backups are not configured for this session")

// SetWizardImage compresses raw as the onboarding profile picture. The wizard
// is only updated once compression has finished.
func (s *Session) SetWizardImage(ctx context.Context, raw []byte) error {
	img, err := imaging.Prepare(ctx, raw, imaging.ProfilePreset)
	if err != nil {
		return err
	}
	s.wizard.ProfileImage = img
	return nil
}

// CompleteOnboarding copies the wizard into state, persists, and replaces the
// current route with the app.
func (s *Session) CompleteOnboarding() error {
	if err := s.wizard.Fields.Validate(); err != nil {
		return err
	}
	s.wizard.Complete(s.state)
	err := s.Persist()
	s.router.Navigate(router.App.Path(), true)
	return err
}

func (s *Session) SaveProfile(in settings.ProfileInput) error {
	settings.SaveProfile(&s.state.User, in)
	return s.Persist()
}

// SetProfileImage compresses raw and stores it on the user.
func (s *Session) SetProfileImage(ctx context.Context, raw []byte) error {
	img, err := imaging.Prepare(ctx, raw, imaging.ProfilePreset)
	if err != nil {
		return err
	}
	settings.SetProfileImage(&s.state.User, img)
	return s.Persist()
}

func (s *Session) ClearProfileImage() error {
	settings.SetProfileImage(&s.state.User, "")
	return s.Persist()
}

// UpsertProject saves a project and re-derives the draft, since a selected
// project's template may have changed.
func (s *Session) UpsertProject(in settings.ProjectInput) (models.Project, error) {
	projects, p, err := settings.UpsertProject(s.state.Projects, in)
	if err != nil {
		return models.Project{}, err
	}
	s.state.Projects = projects
	if s.state.IsSelected(p.ID) {
		s.RefreshDraft()
	}
	return p, s.Persist()
}

func (s *Session) DeleteProject(id int) error {
	draft, err := settings.DeleteProject(s.state, id)
	if err != nil {
		return err
	}
	report.Fill(s.surface, draft)
	return s.Persist()
}

func (s *Session) ToggleProject(id int) error {
	draft, err := settings.ToggleProject(s.state, id)
	if err != nil {
		return err
	}
	report.Fill(s.surface, draft)
	return s.Persist()
}

func (s *Session) AddAttachment(ctx context.Context, raw []byte) (imaging.Attachment, error) {
	return s.attachments.Add(ctx, raw)
}

func (s *Session) RemoveAttachment(id string) bool {
	return s.attachments.Remove(id)
}

// Compose builds the shareable artifact from the surface and attachments.
// At least one project must be selected.
func (s *Session) Compose() (report.Artifact, error) {
	if len(s.state.SelectedProjects) == 0 {
		return report.Artifact{}, &apperrors.ValidationError{Field: "selectedProjects", Message: "select at least one project"}
	}
	return report.Compose(s.state.User, s.surface.Content(), s.attachments.DataURLs(), s.now()), nil
}

// Submit records a composed artifact as today's report. On success the
// attachment buffer and draft are cleared and the state persisted.
func (s *Session) Submit(a report.Artifact, confirm report.ConfirmFunc) (report.SaveOutcome, error) {
	out, err := report.Submit(s.state, a, s.now(), confirm)
	if err != nil {
		return out, err
	}
	s.attachments.Clear()
	s.RefreshDraft()
	logger.Info("report saved", "updated", out.Updated, "index", out.Index)
	return out, s.Persist()
}

// Morning renders the stand-up message for today.
func (s *Session) Morning() string {
	return report.Morning(s.state.MorningTemplate, s.state.User, s.now())
}

func (s *Session) MorningPreview(template string) string {
	return report.MorningPreview(template, s.state.User, s.now())
}

func (s *Session) SaveMorningTemplate(template string) error {
	settings.SaveMorningTemplate(s.state, template)
	return s.Persist()
}

func (s *Session) ResetMorningTemplate() error {
	settings.ResetMorningTemplate(s.state)
	return s.Persist()
}

// YearGrid builds the heatmap for year.
func (s *Session) YearGrid(year int) heatmap.YearGrid {
	return heatmap.BuildYearGrid(s.state.Reports, year, s.now())
}

// ViewDay returns the report saved on the day identified by key.
func (s *Session) ViewDay(key string) (heatmap.View, error) {
	day, err := parseDay(key, s.now())
	if err != nil {
		return heatmap.View{}, err
	}
	r, ok := heatmap.FindReportForDay(s.state.Reports, day)
	if !ok {
		return heatmap.View{}, fmt.Errorf("no report on %s: %w", key, apperrors.ErrNotFound)
	}
	return heatmap.ReportView(s.state, r, s.now().Location()), nil
}

// Export returns the backup document for the current state.
func (s *Session) Export() ([]byte, error) {
	return backup.Export(s.state, s.now())
}

// ExportTo writes a backup document into dir and returns its path.
func (s *Session) ExportTo(dir string) (string, error) {
	return backup.WriteExport(s.state, dir, s.now())
}

// Import merges a backup document over the current state, persists, and
// moves to the app. A rejected document changes nothing.
func (s *Session) Import(doc []byte) error {
	merged, err := backup.Import(s.state, doc)
	if err != nil {
		return err
	}
	s.replaceState(merged)
	err = s.Persist()
	s.router.Navigate(router.App.Path(), true)
	return err
}

// ImportFile reads and imports the backup at path.
func (s *Session) ImportFile(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	return s.Import(doc)
}

func (s *Session) CreateBackup() (string, error) {
	if s.backups == nil {
		return "", ErrNoBackups
	}
	return s.backups.CreateBackup(s.state)
}

// RestoreBackup imports the backup at path, or the newest backup when path
// is empty. Completed state is snapshotted first so a restore can be undone.
func (s *Session) RestoreBackup(path string) error {
	if s.backups == nil {
		return ErrNoBackups
	}
	if path == "" {
		latest, err := s.backups.LatestBackup()
		if err != nil {
			return err
		}
		path = latest.Path
	}
	if s.state.OnboardingComplete {
		if _, err := s.backups.CreateBackup(s.state); err != nil {
			logger.Warn("pre-restore backup failed", "error", err)
		}
	}
	restored, err := s.backups.RestoreBackup(s.state, path)
	if err != nil {
		return err
	}
	s.replaceState(restored)
	err = s.Persist()
	s.router.Navigate(router.App.Path(), true)
	return err
}

// ResetAll deletes everything: the stored document, the in-memory state and
// the transient buffers. The route returns to the landing page.
func (s *Session) ResetAll() error {
	s.replaceState(settings.ResetAll())
	s.attachments.Clear()
	s.wizard.Reset()
	err := s.store.Clear()
	s.router.Navigate(router.Landing.Path(), true)
	if err != nil {
		logger.Error("failed to clear storage", "error", err)
	}
	return err
}

func (s *Session) replaceState(state *models.AppState) {
	s.state = state
	s.RefreshDraft()
}
