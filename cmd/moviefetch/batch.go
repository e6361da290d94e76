package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/metadata"
	"github.com/smdrama/moviefetch/internal/movie"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve every URL in a file",
	Long: `Resolve every URL in a file, one per line. Blank lines and lines
starting with # are skipped. Use - to read from stdin.

Examples:
  moviefetch batch urls.txt
  moviefetch batch urls.txt --json > records.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatchCmd,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("no-progress", false, "Hide the progress bar")
}

// batchResult is one line of batch output.
type batchResult struct {
	URL     string         `json:"url"`
	Details *movie.Details `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	urls, err := readURLs(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No URLs to resolve.")
		return nil
	}

	ctx := cmd.Context()
	a, cleanup, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var bar *progressbar.ProgressBar
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && !jsonOutput {
		bar = progressbar.NewOptions(len(urls),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Resolving"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	start := time.Now()
	results, err := resolveAll(ctx, a.Resolver, urls, bar)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, results)
	}

	resolved := 0
	for _, r := range results {
		if r.Details != nil {
			resolved++
			fmt.Fprintf(out, "ok    %s  %s\n", r.URL, r.Details.Title)
			continue
		}
		fmt.Fprintf(out, "fail  %s  %s\n", r.URL, r.Error)
	}
	fmt.Fprintf(out, "\nDone: %d resolved, %d failed in %s.\n", resolved, len(results)-resolved, time.Since(start).Round(time.Millisecond))
	return nil
}

type urlResolver interface {
	Resolve(ctx context.Context, rawURL string) (*movie.Details, error)
}

// resolveAll resolves urls one at a time. Per-URL failures are recorded in
// the result; only cancellation stops the run.
func resolveAll(ctx context.Context, r urlResolver, urls []string, bar *progressbar.ProgressBar) ([]batchResult, error) {
	results := make([]batchResult, 0, len(urls))
	for _, u := range urls {
		if bar != nil {
			bar.Describe(truncate(u, 40))
		}
		d, err := r.Resolve(ctx, u)
		if err != nil && ctx.Err() != nil {
			return results, ctx.Err()
		}

		res := batchResult{URL: u, Details: d}
		switch {
		case errors.Is(err, metadata.ErrNoData):
			res.Error = "no data"
		case err != nil:
			res.Error = err.Error()
		}
		results = append(results, res)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return results, nil
}

func readURLs(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return urls, nil
}
