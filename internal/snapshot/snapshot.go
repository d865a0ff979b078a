// Package snapshot keeps the most recent reading on local disk under a single
// fixed key, either as a Markdown document or as a row in SQLite.
package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/yidao/internal/bazi"
)

// Key is the single storage key. Bumping the suffix invalidates older saves.
const Key = "YIDAO_2026_V6_FINAL"

var (
	// ErrNotFound indicates nothing has been saved under Key.
	ErrNotFound = errors.New("snapshot: not found")
	// ErrCorrupt indicates the saved value could not be decoded or is inconsistent.
	ErrCorrupt = errors.New("snapshot: corrupt")
)

// Store persists one Snapshot.
type Store interface {
	Save(Snapshot) error
	Load() (Snapshot, error)
	Clear() error
	Close() error
}

// User is the person a reading was cast for.
type User struct {
	Zodiac    bazi.Zodiac      `json:"zodiac" yaml:"zodiac"`
	BirthDate bazi.Date        `json:"birthDate" yaml:"birth_date"`
	BirthTime bazi.TimeBracket `json:"birthTime" yaml:"birth_time"`
	DayMaster bazi.Stem        `json:"dayMaster" yaml:"day_master"`
	Bazi      bazi.Profile     `json:"bazi" yaml:"bazi"`
}

// Snapshot is one saved reading.
type Snapshot struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
	User    User      `json:"user"`
	Report  string    `json:"report"`
}

// New stamps a fresh snapshot.
func New(user User, report string, now time.Time) Snapshot {
	return Snapshot{
		ID:      uuid.NewString(),
		SavedAt: now.UTC().Truncate(time.Second),
		User:    user,
		Report:  report,
	}
}

// Validate checks the snapshot is complete and self-consistent.
func (s Snapshot) Validate() error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if s.SavedAt.IsZero() {
		return fmt.Errorf("saved timestamp is required")
	}
	u := s.User
	if !u.Zodiac.Valid() {
		return fmt.Errorf("zodiac %d out of range", int(u.Zodiac))
	}
	if !u.BirthDate.Valid() {
		return fmt.Errorf("birth date %s is invalid", u.BirthDate)
	}
	if u.DayMaster != u.Bazi.DayMaster() {
		return fmt.Errorf("day master %s does not match chart %s", u.DayMaster, u.Bazi.DayMaster())
	}
	if !u.BirthTime.Known() && u.BirthTime != bazi.BracketUnknown {
		return fmt.Errorf("birth time %d out of range", int(u.BirthTime))
	}
	if u.BirthTime.Known() != u.Bazi.HasHour() {
		return fmt.Errorf("birth time %s does not match chart", u.BirthTime)
	}
	if want := bazi.Compute(u.BirthDate, u.BirthTime); !u.Bazi.Equal(want) {
		return fmt.Errorf("chart %s does not match birth data (expected %s)", u.Bazi, want)
	}
	if strings.TrimSpace(s.Report) == "" {
		return fmt.Errorf("report is empty")
	}
	return nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}
