// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

func probeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Print the properties of a media file without decoding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.open(args[0])
			if err := f.ReadProperties(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd, f)
		},
	}
}

func infoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Load a media file and print the resulting buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.open(args[0])
			if err := f.ReadProperties(cmd.Context()); err != nil {
				return err
			}
			if err := f.Load(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd, f)
		},
	}
}

func convertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Write a media file as mono 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.open(args[0]).Write(cmd.Context(), args[1])
		},
	}
}

func trimCommand(a *app) *cobra.Command {
	var begin, length time.Duration

	cmd := &cobra.Command{
		Use:   "trim <input> <output.wav>",
		Short: "Keep part of a media file and write it as mono 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var beginPtr, lengthPtr *time.Duration
			if cmd.Flags().Changed("begin") {
				beginPtr = &begin
			}
			if cmd.Flags().Changed("length") {
				lengthPtr = &length
			}
			if beginPtr == nil && lengthPtr == nil {
				return errors.New("trim: at least one of --begin or --length is required")
			}

			f := a.open(args[0])
			if err := f.Trim(cmd.Context(), beginPtr, lengthPtr); err != nil {
				return err
			}
			return f.Write(cmd.Context(), args[1])
		},
	}

	cmd.Flags().DurationVar(&begin, "begin", 0, "Start of the kept part, e.g. 1.5s")
	cmd.Flags().DurationVar(&length, "length", 0, "Length of the kept part, e.g. 2s")

	return cmd
}

func reverseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <input> <output.wav>",
		Short: "Write a media file backwards as mono 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.open(args[0])
			if err := f.Reverse(cmd.Context()); err != nil {
				return err
			}
			return f.Write(cmd.Context(), args[1])
		},
	}
}
