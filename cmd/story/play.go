package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-story/internal/application/handlers"
	"github.com/ersonp/lore-story/internal/domain/entities"
	"github.com/ersonp/lore-story/internal/domain/services"
	"github.com/ersonp/lore-story/internal/infrastructure/console"
)

type playFlags struct {
	format  string
	start   string
	life    int
	story   string
	dumpTag string
	summary bool
}

func newPlayCmd() *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Play a story interactively",
		Long: "Loads a story file (or a story from the library with --story) and plays it.\n" +
			"Type the number of an option and press Enter. The story ends when no situation\n" +
			"matches the chosen tag, when life drops to zero, or when input ends.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "File format (csv, json, yaml, auto)")
	cmd.Flags().StringVar(&flags.start, "start", "", "Tag of the first situation")
	cmd.Flags().IntVar(&flags.life, "life", 0, "Starting life")
	cmd.Flags().StringVarP(&flags.story, "story", "s", "", "Play a story from the library instead of a file")
	cmd.Flags().StringVar(&flags.dumpTag, "dump", "", "Print the internal state of a situation after the session")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a one-line session summary after the game")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string, flags playFlags) error {
	if flags.format != "" && !isValidFormat(flags.format) {
		return fmt.Errorf("invalid --format value %q (valid: %v)", flags.format, validFormats)
	}

	play := func(d *Deps) error {
		opts := handlers.PlayOptions{
			File:    d.Config.Story.File,
			Source:  sourceOptions(d.Config, flags.format),
			Story:   flags.story,
			Engine:  engineOptions(cmd, d, flags),
			DumpTag: flags.dumpTag,
		}
		if len(args) > 0 {
			opts.File = args[0]
		}

		out := cmd.OutOrStdout()
		con := console.New(cmd.InOrStdin(), out)

		result, err := d.PlayHandler.Handle(cmd.Context(), opts, con)
		if err != nil {
			return err
		}

		if result.Dump != nil {
			displayDump(out, *result.Dump)
		}
		if flags.summary {
			displayOutcome(out, result.Outcome)
		}
		return nil
	}

	if flags.story == "" {
		return withDeps(play)
	}
	return withLibraryDeps(func(d *libraryDeps) error {
		return play(&d.Deps)
	})
}

// engineOptions merges config values with flags explicitly set on the command line.
func engineOptions(cmd *cobra.Command, d *Deps, flags playFlags) services.EngineOptions {
	opts := services.EngineOptions{
		StartTag:         d.Config.Engine.StartTag,
		StartLife:        services.StartLife(d.Config.Engine.StartLife),
		InvalidSelection: d.Config.Engine.InvalidSelection,
	}
	if cmd.Flags().Changed("start") {
		opts.StartTag = flags.start
	}
	if cmd.Flags().Changed("life") {
		opts.StartLife = services.StartLife(flags.life)
	}
	return opts
}

func displayDump(w io.Writer, node entities.StoryNode) {
	fmt.Fprintf(w, "%+v\n", node)
}

func displayOutcome(w io.Writer, outcome entities.Outcome) {
	switch outcome.Reason {
	case entities.EndFinished:
		fmt.Fprintf(w, "The story ends at %q with %d life after %d turns.\n", outcome.State.Tag, outcome.State.Life, outcome.Turns)
	case entities.EndDead:
		fmt.Fprintf(w, "You died at %q after %d turns.\n", outcome.State.Tag, outcome.Turns)
	case entities.EndInputClosed:
		fmt.Fprintf(w, "Input closed at %q with %d life after %d turns.\n", outcome.State.Tag, outcome.State.Life, outcome.Turns)
	case entities.EndCanceled:
		fmt.Fprintln(w, "Interrupted.")
	}
}
