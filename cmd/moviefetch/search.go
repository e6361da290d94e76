package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/movie"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <title>...",
	Short: "Search for a title",
	Long: `Search for a title and show up to five candidates.

Examples:
  moviefetch search "Breaking Bad" --type series
  moviefetch search Parasite`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("type", "movie", "Content type (movie or series)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	typeFlag, _ := cmd.Flags().GetString("type")
	t, err := movie.ParseType(typeFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, cleanup, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := a.Resolver.Search(ctx, title, t)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No results found")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tYEAR\tTMDB\tSCORE")
	for i, r := range results {
		tmdbID := "-"
		if r.TMDBID != 0 {
			tmdbID = fmt.Sprintf("%d", r.TMDBID)
		}
		year := intOrEmpty(r.Details.Year)
		if year == "" {
			year = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\n", i+1, truncate(r.Details.Title, 40), year, tmdbID, r.Score)
	}
	return tw.Flush()
}
