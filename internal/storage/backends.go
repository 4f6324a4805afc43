package storage

import "github.com/vovakirdan/tui-flappy/internal/registry"

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendGData  = "gdata"
	BackendMemory = "memory"
)

func init() {
	registry.Register(BackendSQLite, "SQLite database with run history", func(opts registry.Options) (registry.Backend, error) {
		s, err := Open(opts.Path)
		if err != nil {
			return nil, err
		}
		return s.Game(opts.GameID), nil
	})
	registry.Register(BackendGData, "per-user save data, best score only", func(opts registry.Options) (registry.Backend, error) {
		return OpenSaveData(opts.AppName)
	})
	registry.Register(BackendMemory, "in-process only, lost on exit", func(registry.Options) (registry.Backend, error) {
		return NewMemory(), nil
	})
}
