package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Kartik213/rustlings/internal/app"
	"github.com/Kartik213/rustlings/internal/domain"
	"github.com/Kartik213/rustlings/internal/exercise"
	"github.com/Kartik213/rustlings/internal/ports"
	"github.com/Kartik213/rustlings/internal/watch"
)

func newStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), e, cmd.OutOrStdout())
		},
	}
}

func runStatus(ctx context.Context, e *env, out io.Writer) error {
	exercises, err := exercise.Scan(e.cfg.ExercisesDir, e.cfg.Extension)
	if err != nil {
		return err
	}
	report, err := e.tracker.Display(ctx, exercises, out)
	if err != nil {
		return err
	}
	e.logger.Debug("status shown", ports.String("kind", report.Kind.String()), ports.Int("done", report.Done))
	return nil
}

func newUpdateCmd(e *env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Record today's progress",
		Long:  "Record today's progress. Requires at least one exercise that looks done unless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				exercises, err := exercise.Scan(e.cfg.ExercisesDir, e.cfg.Extension)
				if err != nil {
					return err
				}
				if app.CountDone(exercises) == 0 {
					return fmt.Errorf("update: %w", domain.ErrNoProgress)
				}
			}
			return e.tracker.Update(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "record progress without checking exercises")
	return cmd
}

func newWatchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch exercises and record progress as they are solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := watch.New(watch.Config{
				ExercisesDir: e.cfg.ExercisesDir,
				Extension:    e.cfg.Extension,
				Debounce:     e.cfg.Debounce,
			}, e.tracker, cmd.OutOrStdout(), e.logger)
			return w.Run(cmd.Context())
		},
	}
}
