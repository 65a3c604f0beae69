// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/ik5/audiofile"
	"github.com/ik5/audiofile/config"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	lookuper envconfig.Lookuper

	backend        string
	sampleRate     int
	noSafetyChecks bool
	logLevel       string

	cfg    *config.Config
	logger *slog.Logger
}

// rootCommand builds the command tree. Configuration is read through l and
// flags given on the command line override it.
func rootCommand(l envconfig.Lookuper) *cobra.Command {
	a := &app{lookuper: l}

	rootCmd := &cobra.Command{
		Use:          "audiofile",
		Short:        "Inspect and edit audio files as mono 16-bit PCM",
		SilenceUsage: true,
	}

	a.setupFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.initialize(cmd)
	}

	rootCmd.AddCommand(
		probeCommand(a),
		infoCommand(a),
		convertCommand(a),
		trimCommand(a),
		reverseCommand(a),
	)

	return rootCmd
}

func (a *app) setupFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.backend, "backend", config.BackendFFmpeg, "Conversion backend: ffmpeg or native")
	flags.IntVar(&a.sampleRate, "sample-rate", config.DefaultSampleRate, "Sample rate in Hz samples are loaded at")
	flags.BoolVar(&a.noSafetyChecks, "no-safety-checks", false, "Trust a canonical input and read it without converting")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

// initialize loads the environment configuration and applies the flags
// that were set explicitly.
func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.LoadWith(cmd.Context(), a.lookuper)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("sample-rate") {
		cfg.SampleRate = a.sampleRate
	}
	if flags.Changed("no-safety-checks") {
		cfg.SafetyChecks = !a.noSafetyChecks
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	a.logger.Debug("configuration", "config", cfg.String())

	return nil
}

func (a *app) open(path string) *audiofile.AudioFile {
	return audiofile.New(path, audiofile.WithConfig(*a.cfg), audiofile.WithLogger(a.logger))
}

func (a *app) print(cmd *cobra.Command, f *audiofile.AudioFile) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), f.String())
	return err
}
