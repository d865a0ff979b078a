package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/kingrea/yidao/internal/config"
)

// Open returns the store selected by configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Backend() {
	case config.BackendSQLite:
		return NewSQLiteStore(filepath.Join(cfg.StateDir(), DatabaseFile))
	case config.BackendFile, "":
		return NewFileStore(cfg.StateDir()), nil
	default:
		return nil, fmt.Errorf("snapshot: unknown backend %q", cfg.Backend())
	}
}
