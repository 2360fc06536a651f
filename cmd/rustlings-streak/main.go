package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/Kartik213/rustlings/internal/adapters/fs"
	logAdapter "github.com/Kartik213/rustlings/internal/adapters/log"
	"github.com/Kartik213/rustlings/internal/app"
	"github.com/Kartik213/rustlings/internal/cliconfig"
)

var longHelp = strings.TrimSpace(`
Keep a daily streak while working through the exercises.

The streak counts consecutive calendar days on which at least one exercise
looks done. It is stored in ~/.rustlings_streak.json. Running without a
subcommand prints the current status.

Configuration is read from $HOME/.rustlings/config.toml, then RUSTLINGS_*
environment variables, then flags.
`)

var exampleUsage = strings.TrimSpace(`
  rustlings-streak
  rustlings-streak update --exercises ./exercises
  rustlings-streak watch --log-level info
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// env is what every subcommand needs once configuration is resolved.
type env struct {
	cfg     cliconfig.Config
	logger  *logAdapter.ZerologAdapter
	tracker *app.Tracker
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var e env

	log := logAdapter.NewConsoleLogger(os.Stderr, cfg.Level())

	root := &cobra.Command{
		Use:           "rustlings-streak",
		Short:         "Track your daily exercise streak",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Without a home directory there is nowhere to keep the streak.
			if err := cfg.ResolveHome(); err != nil {
				return err
			}

			log = log.Level(cfg.Level())
			e.cfg = cfg
			e.logger = logAdapter.NewZerologAdapter(log)
			e.tracker = app.NewTracker(fs.NewRecordFileRepository(cfg.HomeDir), e.logger, nil)
			log.Debug().Interface("config", cfg).Msg("configuration")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), &e, cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.rustlings/config.toml)")
	root.PersistentFlags().StringVar(&cfg.HomeDir, "home", cfg.HomeDir, "directory holding the streak file (default: user home)")
	root.PersistentFlags().StringVar(&cfg.ExercisesDir, "exercises", cfg.ExercisesDir, "exercises directory")
	root.PersistentFlags().StringVar(&cfg.Extension, "extension", cfg.Extension, "exercise file extension")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "watch mode quiet period before rescanning")

	root.AddCommand(newStatusCmd(&e), newUpdateCmd(&e), newWatchCmd(&e))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("rustlings-streak")
		stop()
		os.Exit(1)
	}
}
