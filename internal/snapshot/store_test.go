package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/config"
)

func sampleSnapshot(t *testing.T, bracket bazi.TimeBracket) Snapshot {
	t.Helper()
	date := bazi.NewDate(1990, 1, 1)
	profile := bazi.Compute(date, bracket)
	user := User{
		Zodiac:    bazi.Horse,
		BirthDate: date,
		BirthTime: bracket,
		DayMaster: profile.DayMaster(),
		Bazi:      profile,
	}
	report := "**【天时 · 离火大势】**\n---\n正文\n\n**【易道智慧：知命顺时，安身立命。】**"
	return New(user, report, time.Date(2026, 2, 4, 8, 30, 15, 999, time.FixedZone("CST", 8*3600)))
}

type storeCase struct {
	name string
	open func(t *testing.T) Store
}

func storeCases() []storeCase {
	return []storeCase{
		{"file", func(t *testing.T) Store { return NewFileStore(filepath.Join(t.TempDir(), "state")) }},
		{"sqlite", func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state", DatabaseFile))
			require.NoError(t, err)
			return s
		}},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.open(t)
			defer store.Close()

			for _, bracket := range []bazi.TimeBracket{bazi.TimeBracket(0), bazi.BracketUnknown} {
				want := sampleSnapshot(t, bracket)
				require.NoError(t, store.Save(want))
				got, err := store.Load()
				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestStoreAbsentAndClear(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.open(t)
			defer store.Close()

			_, err := store.Load()
			assert.ErrorIs(t, err, ErrNotFound)
			require.NoError(t, store.Clear(), "clearing an empty store")

			require.NoError(t, store.Save(sampleSnapshot(t, bazi.TimeBracket(5))))
			require.NoError(t, store.Clear())
			_, err = store.Load()
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreOverwrites(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.open(t)
			defer store.Close()

			first := sampleSnapshot(t, bazi.TimeBracket(1))
			second := sampleSnapshot(t, bazi.TimeBracket(2))
			require.NoError(t, store.Save(first))
			require.NoError(t, store.Save(second))
			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, second.ID, got.ID)
		})
	}
}

func TestStoreRejectsInvalidSnapshot(t *testing.T) {
	for _, tc := range storeCases() {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.open(t)
			defer store.Close()

			snap := sampleSnapshot(t, bazi.BracketUnknown)
			snap.Report = "  "
			assert.Error(t, store.Save(snap))
			_, err := store.Load()
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	cases := map[string]string{
		"no fence":     "just text",
		"unterminated": "---\nyidao:\n  key: x\n",
		"bad yaml":     "---\nyidao: [\n---\nbody",
		"wrong key":    "---\nyidao:\n  key: OLD_KEY\n  saved: 2026-01-01T00:00:00Z\n---\nbody",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewFileStore(t.TempDir())
			require.NoError(t, os.WriteFile(store.Path(), []byte(body), 0o644))
			_, err := store.Load()
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestFileStoreDocumentShape(t *testing.T) {
	store := NewFileStore(t.TempDir())
	snap := sampleSnapshot(t, bazi.TimeBracket(0))
	require.NoError(t, store.Save(snap))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "---\nyidao:\n"))
	assert.Contains(t, text, "key: "+Key)
	assert.Contains(t, text, "zodiac: 马")
	assert.Contains(t, text, "birth_date:")
	assert.Contains(t, text, "1990-01-01")
	assert.True(t, strings.HasSuffix(text, snap.Report))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSQLiteStoreCorrupt(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), DatabaseFile))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec(`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)`, Key, "{not json", "x")
	require.NoError(t, err)
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = store.db.Exec(`UPDATE local_storage SET value = ? WHERE key = ?`, `{"id":"nope"}`, Key)
	require.NoError(t, err)
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestValidateCatchesInconsistentChart(t *testing.T) {
	snap := sampleSnapshot(t, bazi.TimeBracket(0))
	require.NoError(t, snap.Validate())

	wrongMaster := snap
	wrongMaster.User.DayMaster = bazi.StemAt(int(snap.User.DayMaster) + 1)
	assert.Error(t, wrongMaster.Validate())

	lostHour := snap
	lostHour.User.BirthTime = bazi.BracketUnknown
	assert.Error(t, lostHour.Validate())

	// Same day master, different month pillar.
	editedChart := snap
	editedChart.User.Bazi.Month = bazi.Pillar{Stem: bazi.StemAt(int(snap.User.Bazi.Month.Stem) + 2), Branch: snap.User.Bazi.Month.Branch}
	assert.Error(t, editedChart.Validate())

	otherDate := snap
	otherDate.User.BirthDate = bazi.NewDate(1990, 1, 11)
	assert.Error(t, otherDate.Validate())

	badBracket := snap
	badBracket.User.BirthTime = bazi.TimeBracket(40)
	assert.Error(t, badBracket.Validate())
}

func TestFileStoreRejectsEditedChart(t *testing.T) {
	store := NewFileStore(t.TempDir())
	snap := sampleSnapshot(t, bazi.TimeBracket(0))
	require.NoError(t, store.Save(snap))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	edited := strings.Replace(string(data), "丙", "戊", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(store.Path(), []byte(edited), 0o644))

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOpenSelectsBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvTheme, "")
	cfg, err := config.NewConfig(home)
	require.NoError(t, err)

	store, err := Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
	require.NoError(t, store.Close())

	cfg.Settings.Storage.Backend = config.BackendSQLite
	store, err = Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())
	assert.FileExists(t, filepath.Join(cfg.StateDir(), DatabaseFile))

	cfg.Settings.Storage.Backend = "redis"
	_, err = Open(cfg)
	assert.Error(t, err)
}
