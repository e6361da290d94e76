package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/metadata"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a movie or drama URL into a record",
	Long: `Resolve a movie or drama URL into a record.

Examples:
  moviefetch resolve https://www.imdb.com/title/tt0111161/
  moviefetch resolve https://www.themoviedb.org/tv/1396 --json
  moviefetch resolve https://mydramalist.com/702271-queen-of-tears`,
	Args: cobra.ExactArgs(1),
	RunE: runResolveCmd,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolveCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	d, err := a.Resolver.Resolve(ctx, args[0])
	if err != nil {
		if errors.Is(err, metadata.ErrNoData) {
			return fmt.Errorf("no metadata found for %s", args[0])
		}
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), d)
	}
	printDetails(cmd.OutOrStdout(), d)
	return nil
}
