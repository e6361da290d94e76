package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/app"
	"github.com/smdrama/moviefetch/internal/catalog"
	"github.com/smdrama/moviefetch/internal/metadata"
)

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Resolve a URL and add it to the catalogue",
	Long: `Resolve a URL and submit the record to the catalogue backend using the
admin account from [catalog]. Absent ratings are sent as 0, an absent
year as the current year and absent seasons as 1.

Examples:
  moviefetch import https://www.imdb.com/title/tt0903747/ --telegram https://t.me/smdrama/42
  moviefetch import https://www.themoviedb.org/movie/550 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("telegram", "", "Telegram link for the entry")
	importCmd.Flags().Bool("featured", false, "Mark the entry as featured")
	importCmd.Flags().Bool("dry-run", false, "Print the payload instead of submitting it")
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	telegram, _ := cmd.Flags().GetString("telegram")
	featured, _ := cmd.Flags().GetBool("featured")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx := cmd.Context()
	a, cleanup, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := a.Payload(ctx, args[0], app.SubmitOptions{TelegramLink: telegram, Featured: featured})
	if err != nil {
		if errors.Is(err, metadata.ErrNoData) {
			return fmt.Errorf("no metadata found for %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		return printJSON(out, p)
	}

	id, err := a.Submit(ctx, p)
	if err != nil {
		if errors.Is(err, catalog.ErrUnauthorized) {
			return fmt.Errorf("catalogue login rejected: check [catalog] email and password")
		}
		return fmt.Errorf("import failed: %w", err)
	}

	if jsonOutput {
		return printJSON(out, map[string]string{"id": id, "title": p.Title})
	}
	if id == "" {
		fmt.Fprintf(out, "Imported %q\n", p.Title)
		return nil
	}
	fmt.Fprintf(out, "Imported %q (id %s)\n", p.Title, id)
	return nil
}
