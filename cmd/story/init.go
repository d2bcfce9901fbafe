package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-story/internal/infrastructure/config"
)

// sampleStory is written by init when no story file exists yet.
const sampleStory = `SITUACION; LUZ; You wake up in a dark room. A door opens to the right and another to the left.; 0
OPCION; DERECHA; Take the door on the right; -10
OPCION; IZQUIERDA; Take the door on the left; 0
SITUACION; DERECHA; A narrow corridor. Something growls in the dark.; -20
OPCION; SALIDA; Run towards the light; -30
OPCION; LUZ; Go back; 0
SITUACION; IZQUIERDA; A room full of spikes.; -150
OPCION; LUZ; Go back; -150
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration and a sample story",
		Long:  "Creates a .story directory with default configuration and, if missing, a sample story file.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("story already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(cwd))

	storyFile := filepath.Join(cwd, config.DefaultStoryFile)
	if _, err := os.Stat(storyFile); os.IsNotExist(err) {
		if err := os.WriteFile(storyFile, []byte(sampleStory), 0644); err != nil {
			return fmt.Errorf("writing sample story: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n", storyFile)
	}

	fmt.Fprintln(out, "\nRun 'story play' to start.")
	return nil
}
