// Package reading is the consultation use case: it validates what the user
// entered, casts the chart, classifies the day master against the focus
// year and builds the report, keeping the latest result in a snapshot store.
package reading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
	"github.com/kingrea/yidao/internal/report"
	"github.com/kingrea/yidao/internal/snapshot"
)

// Request is what the user entered. BracketSet distinguishes "no bracket
// chosen" from an explicit BracketUnknown.
type Request struct {
	Zodiac     bazi.Zodiac
	Date       bazi.Date
	Bracket    bazi.TimeBracket
	BracketSet bool
}

// Result is a finished reading.
type Result struct {
	User    snapshot.User
	Label   relation.Label
	Report  string
	SavedAt time.Time
}

// Service runs consultations.
type Service struct {
	store  snapshot.Store
	logger *zap.Logger
	now    func() time.Time
}

// Option customizes a Service during construction.
type Option func(*Service)

// WithStore keeps results in store. Without it nothing is persisted.
func WithStore(store snapshot.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for snapshot timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// NewService builds a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consult validates req and produces a reading. When saving the snapshot
// fails the returned Result is still complete and the error has
// KindStorage.
func (s *Service) Consult(ctx context.Context, req Request) (Result, error) {
	const op = "reading.consult"
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := s.validate(op, req); err != nil {
		return Result{}, err
	}

	profile := bazi.Compute(req.Date, req.Bracket)
	user := snapshot.User{
		Zodiac:    req.Zodiac,
		BirthDate: req.Date,
		BirthTime: req.Bracket,
		DayMaster: profile.DayMaster(),
		Bazi:      profile,
	}
	res, err := assemble(user)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Info("reading cast",
		zap.String("date", req.Date.String()),
		zap.String("time", req.Bracket.Code()),
		zap.String("bazi", profile.String()),
		zap.String("label", res.Label.String()))

	if s.store == nil {
		return res, nil
	}
	snap := snapshot.New(user, res.Report, s.now())
	if err := s.store.Save(snap); err != nil {
		s.logger.Error("save snapshot", zap.Error(err))
		return res, &Error{Op: op, Kind: KindStorage, Err: err}
	}
	res.SavedAt = snap.SavedAt
	return res, nil
}

// Validate runs the checks Consult performs before casting the chart.
func (s *Service) Validate(req Request) error {
	return s.validate("reading.validate", req)
}

func (s *Service) validate(op string, req Request) error {
	if !req.BracketSet {
		return &Error{Op: op, Kind: KindMissingBracket}
	}
	if !req.Date.Valid() {
		return &Error{Op: op, Kind: KindInvalidDate, Err: fmt.Errorf("no such day %s", req.Date)}
	}
	check := relation.ValidateZodiacForYear(req.Date.Year, req.Zodiac)
	if !req.Zodiac.Valid() || !check.Matches {
		s.logger.Debug("zodiac mismatch",
			zap.Int("year", req.Date.Year),
			zap.String("claimed", req.Zodiac.Name()),
			zap.String("expected", check.Expected.Name()))
		return &Error{Op: op, Kind: KindZodiacMismatch, Year: req.Date.Year, Zodiac: req.Zodiac, Expected: check.Expected}
	}
	return nil
}

// Restore loads the saved reading. A corrupt snapshot is cleared and
// reported as snapshot.ErrNotFound.
func (s *Service) Restore(ctx context.Context) (Result, error) {
	const op = "reading.restore"
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.store == nil {
		return Result{}, snapshot.ErrNotFound
	}
	snap, err := s.store.Load()
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		return Result{}, snapshot.ErrNotFound
	case errors.Is(err, snapshot.ErrCorrupt):
		s.logger.Warn("discarding corrupt snapshot", zap.Error(err))
		if clearErr := s.store.Clear(); clearErr != nil {
			return Result{}, &Error{Op: op, Kind: KindStorage, Err: clearErr}
		}
		return Result{}, snapshot.ErrNotFound
	case err != nil:
		return Result{}, &Error{Op: op, Kind: KindStorage, Err: err}
	}
	return Result{
		User:    snap.User,
		Label:   relation.ClassifyStems(snap.User.DayMaster, almanac.ReferenceStem),
		Report:  snap.Report,
		SavedAt: snap.SavedAt,
	}, nil
}

// Reset forgets the saved reading.
func (s *Service) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(); err != nil {
		return &Error{Op: "reading.reset", Kind: KindStorage, Err: err}
	}
	s.logger.Info("snapshot cleared")
	return nil
}

func assemble(user snapshot.User) (Result, error) {
	text, err := report.Build(report.Input{Zodiac: user.Zodiac, DayMaster: user.DayMaster})
	if err != nil {
		return Result{}, err
	}
	return Result{
		User:   user,
		Label:  relation.ClassifyStems(user.DayMaster, almanac.ReferenceStem),
		Report: text,
	}, nil
}
