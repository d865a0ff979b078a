package reading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
	"github.com/kingrea/yidao/internal/snapshot"
)

var fixedNow = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)

func horseRequest(bracket bazi.TimeBracket) Request {
	return Request{Zodiac: bazi.Horse, Date: bazi.NewDate(1990, 1, 1), Bracket: bracket, BracketSet: true}
}

func newFileService(t *testing.T, opts ...Option) (*Service, *snapshot.FileStore) {
	t.Helper()
	store := snapshot.NewFileStore(t.TempDir())
	opts = append([]Option{WithStore(store), WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(opts...), store
}

func TestConsultProducesReading(t *testing.T) {
	svc, store := newFileService(t)
	res, err := svc.Consult(context.Background(), horseRequest(bazi.TimeBracket(0)))
	require.NoError(t, err)

	assert.Equal(t, "己巳 丙寅 辛巳 戊子", res.User.Bazi.String())
	assert.Equal(t, bazi.StemXin, res.User.DayMaster)
	assert.Equal(t, relation.DirectOfficer, res.Label)
	assert.Contains(t, res.Report, "本年值神为【正官】")
	assert.Equal(t, fixedNow, res.SavedAt)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, res.Report, saved.Report)
	assert.Equal(t, res.User.Bazi.String(), saved.User.Bazi.String())
}

func TestConsultUnknownBracketHasThreePillars(t *testing.T) {
	svc := NewService()
	res, err := svc.Consult(context.Background(), horseRequest(bazi.BracketUnknown))
	require.NoError(t, err)
	assert.False(t, res.User.Bazi.HasHour())
	assert.True(t, res.SavedAt.IsZero(), "nothing saved without a store")
}

func TestConsultMissingBracket(t *testing.T) {
	svc, store := newFileService(t)
	req := horseRequest(bazi.BracketUnknown)
	req.BracketSet = false
	_, err := svc.Consult(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMissingBracket))
	assert.Contains(t, UserMessage(err), "时辰不详")

	_, err = store.Load()
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestConsultInvalidDate(t *testing.T) {
	svc := NewService()
	req := horseRequest(bazi.TimeBracket(3))
	req.Date = bazi.NewDate(1990, 2, 30)
	_, err := svc.Consult(context.Background(), req)
	assert.True(t, IsKind(err, KindInvalidDate))
}

func TestConsultZodiacMismatch(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewService(WithLogger(zap.New(core)))
	req := horseRequest(bazi.TimeBracket(0))
	req.Zodiac = bazi.Rat
	_, err := svc.Consult(context.Background(), req)

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, KindZodiacMismatch, re.Kind)
	assert.Equal(t, bazi.Horse, re.Expected)
	assert.Equal(t,
		"【干支不合】：阁下自述属【鼠】，然公历【1990年】实为【马】年。推演大运需干支严丝合缝，请核实年份。",
		re.UserMessage())
	assert.Equal(t, 1, logs.FilterMessage("zodiac mismatch").Len())
}

func TestConsultChecksZodiacOnCalendarYear(t *testing.T) {
	// 1990-01-01 falls before the spring cutoff, so its chart year is 己巳,
	// yet the animal check follows the calendar year.
	svc := NewService()
	req := horseRequest(bazi.TimeBracket(0))
	req.Zodiac = bazi.Snake
	_, err := svc.Consult(context.Background(), req)
	assert.True(t, IsKind(err, KindZodiacMismatch))
}

func TestConsultHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewService().Consult(ctx, horseRequest(bazi.TimeBracket(0)))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingStore struct {
	snapshot.Store
	cleared bool
}

func (f *failingStore) Save(snapshot.Snapshot) error { return errors.New("disk full") }
func (f *failingStore) Load() (snapshot.Snapshot, error) {
	return snapshot.Snapshot{}, errors.New("disk gone")
}
func (f *failingStore) Clear() error { f.cleared = true; return errors.New("read-only") }

func TestConsultStorageFailureKeepsResult(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewService(WithStore(&failingStore{}), WithLogger(zap.New(core)))
	res, err := svc.Consult(context.Background(), horseRequest(bazi.TimeBracket(0)))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStorage))
	assert.NotEmpty(t, res.Report)
	assert.Contains(t, UserMessage(err), "天机阻滞")
	assert.Equal(t, 1, logs.FilterMessage("save snapshot").Len())
}

func TestRestore(t *testing.T) {
	svc, _ := newFileService(t)
	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	want, err := svc.Consult(context.Background(), horseRequest(bazi.TimeBracket(6)))
	require.NoError(t, err)
	got, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Report, got.Report)
	assert.Equal(t, want.Label, got.Label)
	assert.Equal(t, want.User.Bazi.String(), got.User.Bazi.String())
}

func TestRestoreClearsCorruptSnapshot(t *testing.T) {
	svc, store := newFileService(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("garbage"), 0o644))

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
	assert.NoFileExists(t, store.Path())
}

func TestRestoreStorageError(t *testing.T) {
	svc := NewService(WithStore(&failingStore{}))
	_, err := svc.Restore(context.Background())
	assert.True(t, IsKind(err, KindStorage))
}

func TestReset(t *testing.T) {
	svc, store := newFileService(t)
	_, err := svc.Consult(context.Background(), horseRequest(bazi.TimeBracket(0)))
	require.NoError(t, err)
	require.NoError(t, svc.Reset(context.Background()))
	_, err = store.Load()
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	failing := &failingStore{}
	err = NewService(WithStore(failing)).Reset(context.Background())
	assert.True(t, failing.cleared)
	assert.True(t, IsKind(err, KindStorage))
	assert.NoError(t, NewService().Reset(context.Background()))
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Op: "reading.consult", Kind: KindStorage, Err: errors.New("boom")}
	assert.Equal(t, "reading.consult: storage: boom", err.Error())
	assert.Equal(t, "", UserMessage(nil))
	assert.Contains(t, UserMessage(errors.New("other")), "天机阻滞")
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestValidateMatchesConsultChecks(t *testing.T) {
	svc := NewService()
	assert.NoError(t, svc.Validate(horseRequest(bazi.BracketUnknown)))

	req := horseRequest(bazi.BracketUnknown)
	req.BracketSet = false
	assert.True(t, IsKind(svc.Validate(req), KindMissingBracket))

	req = horseRequest(bazi.TimeBracket(0))
	req.Zodiac = bazi.Zodiac(99)
	assert.True(t, IsKind(svc.Validate(req), KindZodiacMismatch))
}
