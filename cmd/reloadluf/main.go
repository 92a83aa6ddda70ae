// Command reloadluf reopens the password database files that were open
// when the application last exited.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cyberknet/reloadluf/internal/adapters/driven/config/file"
	"github.com/cyberknet/reloadluf/internal/adapters/driven/storage/memory"
	"github.com/cyberknet/reloadluf/internal/adapters/driven/storage/sqlite"
	"github.com/cyberknet/reloadluf/internal/adapters/driving/cli"
	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetStoreOpener(openStore)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the config store for backend. dir is the configuration
// directory; empty selects ~/.reloadluf.
func openStore(backend, dir string) (driven.ConfigStore, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case cli.BackendTOML:
		store, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case cli.BackendSQLite:
		dataDir := ""
		if dir != "" {
			dataDir = filepath.Join(dir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return store.ConfigStore(), store.Close, nil
	case cli.BackendMemory:
		return memory.NewConfigStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}
