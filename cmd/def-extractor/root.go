package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/config"
	"def-extractor/internal/diagnostic"
	"def-extractor/internal/extract"
	"def-extractor/internal/modload"
	"def-extractor/internal/output"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts       config.Options
		mode       string
		extraTypes string
	)

	cmd := &cobra.Command{
		Use:   "def-extractor [flags] <module>...",
		Short: "Extract the definition type graph of a set of modules",
		Long: `Extract the definition type graph of a set of modules.

A module is a manifest file (.yaml, .yml), a directory of manifests or a Go
package pattern prefixed with "go:".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := output.ParseMode(mode)
			if err != nil {
				return err
			}

			opts.Paths = args
			opts.OutputMode = m
			opts.ExtraTypes = config.SplitExtraTypes(extraTypes)

			return run(&opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&mode, "OutputMode", output.ModeStdout.String(), "output mode: stdout, stdoutBytes or file")
	flags.StringVarP(&opts.OutPath, "out", "o", "", "output file for --OutputMode file")
	flags.StringVar(&opts.LogPath, "log", "", "write log lines to this file instead of stderr")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every inclusion decision")
	flags.StringVar(&extraTypes, "extraTypes", "", `space-separated type name fragments to include as roots, e.g. "Foo Bar"`)
	flags.StringVar(&opts.ProfilePath, "profile", "", "framework profile YAML laid over the built-in one")

	return cmd
}

// run performs one extraction. Diagnostics never fail the run.
func run(opts *config.Options, stdout, stderr io.Writer) error {
	config.LoadDotEnv()
	opts.ApplyEnv()

	if err := opts.Validate(); err != nil {
		return err
	}

	closeLog, err := config.SetupLogging(opts.LogPath, opts.Verbose, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if err := extractTo(opts, stdout); err != nil {
		logger.Error(err.Error())
		return err
	}

	return nil
}

func extractTo(opts *config.Options, stdout io.Writer) error {
	p, err := opts.Profile()
	if err != nil {
		return err
	}

	u, err := modload.Load(opts.Paths)
	if err != nil {
		return err
	}

	res, err := extract.New(p).Extract(u, opts.ExtraTypes)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics.All() {
		logger.Verbose(d.String())
	}

	logger.Info(fmt.Sprintf("extraction recorded %d errors and %d warnings",
		res.Diagnostics.Count(diagnostic.DiagnosticError), res.Diagnostics.Count(diagnostic.DiagnosticWarning)))

	data, err := output.Encode(output.Flatten(res.Registry))
	if err != nil {
		return fmt.Errorf("failed to serialize type graph: %w", err)
	}

	logger.Info(fmt.Sprintf("serialized %d types into %d bytes", res.Registry.Len(), len(data)))

	return output.Write(stdout, data, opts.OutputMode, opts.OutPath)
}
