package cli

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/catalog"
	"github.com/hammamikhairi/casseroll/internal/engine"
	"github.com/hammamikhairi/casseroll/internal/logger"
	"github.com/hammamikhairi/casseroll/internal/selection"
	"github.com/hammamikhairi/casseroll/internal/storage"
)

// runtime is the dependency graph shared by every command.
type runtime struct {
	log     *logger.Logger
	catalog *catalog.Catalog
	store   *storage.MemoryStore
	engine  *engine.Engine
	close   func()
}

// newRuntime opens the log output, loads the catalog and builds the table
// engine. Call close when done.
func (o *RootOptions) newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg := o.cfg
	logOut, closeLog := openLog(cfg.LogFile, cmd.ErrOrStderr())

	// Third-party libraries log through the standard logger; keep them out
	// of the terminal too.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	cat, err := catalog.Load(cfg.CatalogPath, log)
	if err != nil {
		closeLog()
		return nil, WrapExitError(ExitFailure, "loading catalog", err)
	}
	for _, name := range cat.Unknown() {
		log.Warn("catalog: ignoring unknown category %q", name)
	}

	rng := selection.DefaultRand()
	if cfg.HasSeed {
		rng = selection.NewSeededRand(cfg.Seed)
		log.Info("using seed %d", cfg.Seed)
	}

	store := storage.NewMemoryStore(log)
	return &runtime{
		log:     log,
		catalog: cat,
		store:   store,
		engine:  engine.New(cat, store, log, engine.WithRand(rng)),
		close:   closeLog,
	}, nil
}

// openLog directs logs to a file so terminal output stays clean. "stderr"
// or an unopenable file falls back to the command's error stream.
func openLog(path string, fallback io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return fallback, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(fallback, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return fallback, func() {}
	}
	return f, func() { f.Close() }
}
