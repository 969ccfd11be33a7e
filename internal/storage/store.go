package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/logger"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

// CullLevel records how much history a save had to give up to fit.
type CullLevel int

const (
	CullNone CullLevel = iota
	// CullOld dropped images from reports older than constants.CullAge.
	CullOld
	// CullAll dropped images from every report.
	CullAll
)

func (c CullLevel) String() string {
	switch c {
	case CullOld:
		return "old"
	case CullAll:
		return "all"
	default:
		return "none"
	}
}

// SaveResult describes a successful save.
type SaveResult struct {
	Culled CullLevel
}

// Store reads and writes the AppState document under constants.StorageKey.
type Store struct {
	medium Medium
	key    string
	now    func() time.Time
}

type Option func(*Store)

// WithClock overrides the clock used to age reports during culling.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey stores the document under a different key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func NewStore(m Medium, opts ...Option) *Store {
	s := &Store{medium: m, key: constants.StorageKey, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Medium exposes the backing medium.
func (s *Store) Medium() Medium { return s.medium }

// Load returns the stored state with defaults filled in, or nil when nothing
// has been saved yet.
func (s *Store) Load() (*models.AppState, error) {
	data, err := s.medium.Get(s.key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, &apperrors.StorageError{Op: "read", Err: err}
	}
	return Decode(data)
}

// Decode parses a stored document over the first-run defaults. Keys absent
// from the document keep their default values.
func Decode(data []byte) (*models.AppState, error) {
	state := models.NewAppState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, &apperrors.StorageError{Op: "parse", Err: err}
	}
	Normalize(state)
	return state, nil
}

// Normalize fills fields that older documents may lack.
func Normalize(state *models.AppState) {
	if state.Projects == nil {
		state.Projects = []models.Project{}
	}
	for i := range state.Projects {
		if state.Projects[i].Template == "" {
			state.Projects[i].Template = constants.DefaultTemplate
		}
	}
	if state.SelectedProjects == nil {
		state.SelectedProjects = []int{}
	}
	if state.Reports == nil {
		state.Reports = []models.Report{}
	}
	for i := range state.Reports {
		if state.Reports[i].Projects == nil {
			state.Reports[i].Projects = []int{}
		}
		if state.Reports[i].Images == nil {
			state.Reports[i].Images = []string{}
		}
	}
	if state.MorningTemplate == "" {
		state.MorningTemplate = constants.DefaultMorningTemplate
	}
	if state.LastReportDate != nil {
		key := utils.NormalizeDayKey(*state.LastReportDate, time.Local)
		state.LastReportDate = &key
	}
}

// Save writes the state. When the medium is full it culls report images in
// two escalating steps, retrying after each one. Culls are applied to state
// in place and are kept even when the save ultimately fails.
func (s *Store) Save(state *models.AppState) (SaveResult, error) {
	attempts := 1
	err := s.write(state)
	if err == nil {
		return SaveResult{}, nil
	}
	if !errors.Is(err, apperrors.ErrQuotaExceeded) {
		return SaveResult{}, &apperrors.StorageError{Op: "write", Err: err}
	}

	cutoff := s.now().Add(-constants.CullAge)
	if CullImages(state, func(r models.Report) bool { return r.Date.Before(cutoff) }) {
		logger.Warn("storage full, removed images from old reports", "cutoff", cutoff.Format(constants.DateFormat))
		attempts++
		err = s.write(state)
		if err == nil {
			return SaveResult{Culled: CullOld}, nil
		}
		if !errors.Is(err, apperrors.ErrQuotaExceeded) {
			return SaveResult{}, &apperrors.StorageError{Op: "write", Err: err}
		}
	}

	if CullImages(state, func(models.Report) bool { return true }) {
		logger.Warn("storage still full, removed images from all reports")
		attempts++
		err = s.write(state)
		if err == nil {
			return SaveResult{Culled: CullAll}, nil
		}
		if !errors.Is(err, apperrors.ErrQuotaExceeded) {
			return SaveResult{}, &apperrors.StorageError{Op: "write", Err: err}
		}
	}

	logger.Error("storage full, state kept in memory only", "attempts", attempts)
	return SaveResult{}, &apperrors.StorageQuotaError{Attempts: attempts}
}

// Clear deletes the stored document.
func (s *Store) Clear() error {
	if err := s.medium.Remove(s.key); err != nil {
		return &apperrors.StorageError{Op: "clear", Err: err}
	}
	return nil
}

func (s *Store) Close() error {
	return s.medium.Close()
}

func (s *Store) write(state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.medium.Set(s.key, data)
}

// CullImages empties the image list of every report matching pick and
// reports whether anything was removed.
func CullImages(state *models.AppState, pick func(models.Report) bool) bool {
	culled := false
	for i := range state.Reports {
		r := &state.Reports[i]
		if len(r.Images) > 0 && pick(*r) {
			r.Images = []string{}
			culled = true
		}
	}
	return culled
}
