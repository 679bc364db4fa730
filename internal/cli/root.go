// Package cli implements the layout-gen command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/solardome/layout-gen/internal/layoutgen"
	"github.com/solardome/layout-gen/internal/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

const (
	shortDesc = "Generate an HTML picture of a keyboard firmware's layout."
	longDesc  = `Generate an HTML picture of a keyboard firmware's layout.

Reads the UI info JSON exported by the firmware build and draws every layer
onto an SVG template, labelling each key with the function it has on that
layer. The document is written to stdout unless --out is given.`
)

type rootArgs struct {
	logLevel  string
	logFormat string

	uiInfoFile   string
	buildScripts string
	configFile   string
	out          string
	labelsJSON   string
	checksums    string
	runLog       string
	watch        bool
}

// NewRootCmd returns the layout-gen command with its subcommands.
func NewRootCmd() *cobra.Command {
	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:           "layout-gen",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	flags := cmd.Flags()
	flags.StringVar(&args.uiInfoFile, "ui-info-file", "", "Path to the firmware UI info JSON")
	flags.StringVar(&args.buildScripts, "build-scripts", "", "Directory holding "+layoutgen.TemplateFile+" and "+layoutgen.ScriptFile+" (default: built in)")
	flags.StringVar(&args.configFile, "config", "", "Path to a YAML config file")
	flags.StringVar(&args.out, "out", "", "Write the document to this file instead of stdout")
	flags.StringVar(&args.labelsJSON, "labels-json", "", "Also write the key labels as JSON to this file")
	flags.StringVar(&args.checksums, "checksums", "", "Write sha256 checksums of the written files (requires --out)")
	flags.StringVar(&args.runLog, "run-log", "", "Append a JSON lines run log to this file")
	flags.BoolVar(&args.watch, "watch", false, "Re-render when an input changes (requires --out)")

	for _, name := range []string{"ui-info-file", "config", "out", "labels-json", "checksums", "run-log"} {
		if err := cmd.MarkFlagFilename(name); err != nil {
			panic(err)
		}
	}
	if err := cmd.MarkFlagDirname("build-scripts"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.logLevel, args.logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		slog.SetDefault(slog.New(h))
		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		cfg := layoutgen.Config{
			UIInfoPath:      args.uiInfoFile,
			BuildScriptsDir: args.buildScripts,
			ConfigPath:      args.configFile,
			OutPath:         args.out,
			LabelsJSONPath:  args.labelsJSON,
			ChecksumsPath:   args.checksums,
			RunLogPath:      args.runLog,
			Stdout:          cc.OutOrStdout(),
		}
		if !args.watch {
			_, err := layoutgen.Run(cfg)
			return err
		}
		return layoutgen.Watch(cc.Context(), cfg, func(res layoutgen.Result, err error) {
			if err != nil {
				slog.Error("render failed", slog.Any("err", err))
				return
			}
			slog.Info("rendered", slog.String("out", cfg.OutPath), slog.Int("layers", len(res.Layers)))
		})
	}

	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewScaffoldCmd())
	cmd.AddCommand(NewKeycodesCmd())

	return cmd
}
