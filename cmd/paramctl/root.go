// Root command and session lifecycle for the paramctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/parambank/internal/paths"
	"github.com/mesh-intelligence/parambank/internal/snapshot"
	"github.com/mesh-intelligence/parambank/pkg/catalog"
	"github.com/mesh-intelligence/parambank/pkg/params"
)

const version = "v0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Session state built by openSession and torn down by closeSession.
var (
	store        *params.Store
	backend      *snapshot.Backend
	sessionDirty bool

	// configDataDir holds the data_dir value loaded from config.yaml.
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:                "paramctl",
	Short:              "paramctl inspects and edits control-loop parameters",
	Version:            version,
	PersistentPreRunE:  openSession,
	PersistentPostRunE: closeSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.paramctl-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// openSession builds the catalog store, opens the snapshot backend, and
// restores saved values. Skipped for the version command, which needs no
// backend.
func openSession(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err = catalog.NewStore()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	if cfg.GetBool(cfgKeySeedDefaults) {
		store.SeedDefaults()
	}

	backend, err = snapshot.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	if _, err := backend.Restore(store); err != nil {
		backend.Close()
		return fmt.Errorf("restore snapshot: %w", err)
	}
	return nil
}

// closeSession saves a snapshot when a command mutated the store, then
// releases the backend.
func closeSession(cmd *cobra.Command, args []string) error {
	if backend == nil {
		return nil
	}
	if sessionDirty {
		if err := backend.Save(store); err != nil {
			backend.Close()
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	return backend.Close()
}

// lookupKey resolves a CLI key argument against the catalog.
func lookupKey(key string) (params.ID, error) {
	return store.Table().Lookup(key)
}
