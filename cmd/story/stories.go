package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Manage the story library",
	}

	cmd.AddCommand(
		newStoriesListCmd(),
		newStoriesDeleteCmd(),
	)

	return cmd
}

func newStoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stories in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibraryDeps(func(d *libraryDeps) error {
				stories, err := d.LibraryHandler.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(stories) == 0 {
					fmt.Fprintln(out, "No stories found.")
					return nil
				}

				for _, s := range stories {
					fmt.Fprintf(out, "%-20s %4d records  %s  (%s)\n",
						s.Name, s.RecordCount, s.CreatedAt.Format("2006-01-02 15:04"), s.Source)
				}
				return nil
			})
		},
	}
}

func newStoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a story from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibraryDeps(func(d *libraryDeps) error {
				if err := d.LibraryHandler.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted story %q\n", args[0])
				return nil
			})
		},
	}
}
