package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-story/internal/application/handlers"
)

type importFlags struct {
	name   string
	format string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a story file into the library",
		Long:  "Parses a story file and stores it in the local library so it can be played with 'story play --story NAME'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Library name (defaults to the file name)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "File format (csv, json, yaml, auto)")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if flags.format != "" && !isValidFormat(flags.format) {
		return fmt.Errorf("invalid --format value %q (valid: %v)", flags.format, validFormats)
	}

	return withLibraryDeps(func(d *libraryDeps) error {
		out := cmd.OutOrStdout()
		opts := handlers.ImportOptions{
			Name:     flags.name,
			Source:   sourceOptions(d.Config, flags.format),
			StartTag: d.Config.Engine.StartTag,
		}

		result, err := d.LibraryHandler.Import(cmd.Context(), filePath, opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Imported %s as %q: %d records\n", filePath, result.Story.Name, result.Story.RecordCount)
		if !result.Report.Clean() {
			fmt.Fprintf(out, "\nWarnings (%d):\n", len(result.Report.Warnings))
			for _, warning := range result.Report.Warnings {
				fmt.Fprintf(out, "  %s\n", warning)
			}
		}
		return nil
	})
}
