package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/hooks"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/review"
	"github.com/mark3labs/onboardr/internal/step"
	"github.com/mark3labs/onboardr/internal/tui"
	"github.com/mark3labs/onboardr/internal/wizard"
	"github.com/spf13/cobra"
)

var wizardFlags struct {
	format      string
	maskSecrets bool
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if wizardFlags.format != "" {
		cfg.Review.Format = wizardFlags.format
	}
	if wizardFlags.maskSecrets {
		cfg.Review.MaskSecrets = true
	}

	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	// The TUI owns the terminal until it exits, so the record is buffered
	// and printed afterwards.
	var out bytes.Buffer
	ctrl, err := newController(cfg, &out)
	if err != nil {
		return err
	}

	if err := tui.Run(ctrl); err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			logger.Info("Wizard cancelled (session %s)", ctrl.ID())
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		return err
	}

	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

// newController wires the steps and review sinks described by cfg. The
// submitted record is logged with the password masked, encoded to out and
// finally handed to the on_submit hook. The hook goes last so a retry after
// a failed delivery never runs it twice, and out is rewritten on every
// attempt.
func newController(cfg *config.Config, out *bytes.Buffer) (*wizard.Controller, error) {
	format, err := review.ParseFormat(cfg.Review.Format)
	if err != nil {
		return nil, err
	}

	opts := []review.Option{review.WithFormat(format)}
	if cfg.Review.MaskSecrets {
		opts = append(opts, review.WithMaskedSecrets())
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	session := uuid.NewString()
	hook := cfg.Hooks.OnSubmit

	printed := review.WriterSink{W: out, Format: format}
	sink := review.Tee(
		review.LogSink{Log: logger.Default},
		review.SinkFunc(func(rec step.Record) error {
			out.Reset()
			return printed.Submit(rec)
		}),
		hooks.SubmitSink{Hook: &hook, WorkDir: workDir, Session: session, Format: format},
	)

	codes := make([]step.Option, 0, len(cfg.CountryCodes))
	for _, c := range cfg.CountryCodes {
		label := c.Label
		if label == "" {
			label = c.Code
		}
		codes = append(codes, step.Option{Value: c.Code, Label: label})
	}

	return wizard.New(
		step.Steps(codes),
		review.New(sink, opts...),
		wizard.WithLogger(logger.Default),
		wizard.WithSessionID(session),
	), nil
}
