package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-story/internal/application/handlers"
	"github.com/ersonp/lore-story/internal/infrastructure/watcher"
)

type checkFlags struct {
	format string
	start  string
	watch  bool
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report problems in a story file",
		Long: "Parses a story file and reports what the player would silently miss: options before\n" +
			"any situation, redefined situations, unknown record kinds, options leading to unknown\n" +
			"tags and situations that cannot be reached from the start tag.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "File format (csv, json, yaml, auto)")
	cmd.Flags().StringVar(&flags.start, "start", "", "Tag of the first situation (defaults to config)")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Check again every time the file changes")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags checkFlags) error {
	if flags.format != "" && !isValidFormat(flags.format) {
		return fmt.Errorf("invalid --format value %q (valid: %v)", flags.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		file := d.Config.Story.File
		if len(args) > 0 {
			file = args[0]
		}
		start := d.Config.Engine.StartTag
		if flags.start != "" {
			start = flags.start
		}
		source := sourceOptions(d.Config, flags.format)
		out := cmd.OutOrStdout()

		check := func() error {
			result, err := d.CheckHandler.Handle(file, source, start)
			if err != nil {
				return err
			}
			displayCheck(out, result)
			return nil
		}

		if !flags.watch {
			return check()
		}

		w, err := watcher.New(file, watcher.DefaultDebounce)
		if err != nil {
			return err
		}
		defer w.Close()

		if err := check(); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)...\n", file)

		return w.Watch(cmd.Context(), func() {
			fmt.Fprintln(out)
			if err := check(); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		})
	})
}

func displayCheck(w io.Writer, result *handlers.CheckResult) {
	fmt.Fprintf(w, "Checked %s: %d records, %d situations, %d options\n",
		result.File, result.Records, result.Report.Nodes, result.Report.Options)

	if result.Report.Clean() {
		fmt.Fprintln(w, "No problems found.")
		return
	}

	for _, warning := range result.Report.Warnings {
		fmt.Fprintf(w, "  %s\n", warning)
	}
	fmt.Fprintf(w, "%d warning(s)\n", len(result.Report.Warnings))
}
