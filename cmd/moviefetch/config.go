package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values, and environment variable substitution without resolving anything.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Long:  "Writes the example config.toml to path (default: the XDG config location).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if unset := e.Unset(); len(unset) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range unset {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if required := e.Required(); len(required) > 0 {
		fmt.Fprintln(w, "Required environment variables not set:")
		for _, m := range required {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d\n", cfg.Server.Host, cfg.Server.Port)

	logDest := "stderr"
	if cfg.Log.File != "" {
		logDest = cfg.Log.File
	}
	fmt.Fprintf(w, "  Log:        %s, %s -> %s\n", cfg.Log.Level, cfg.Log.Format, logDest)

	fmt.Fprintf(w, "  OMDb:       %s\n", configured(cfg.OMDb.APIKey != ""))
	fmt.Fprintf(w, "  TMDB:       %s\n", configured(cfg.TMDB.APIKey != ""))
	fmt.Fprintf(w, "  AsianWiki:  %s\n", cfg.AsianWiki.Mode)

	fixtures := "off"
	if cfg.Fixtures.UseWhenUncredentialed {
		fixtures = "on when uncredentialed"
	}
	if cfg.Fixtures.Path != "" {
		fixtures += " (+" + cfg.Fixtures.Path + ")"
	}
	fmt.Fprintf(w, "  Fixtures:   %s\n", fixtures)

	cache := cfg.Cache.Backend
	if cache != "none" {
		cache = fmt.Sprintf("%s, ttl %s", cache, cfg.Cache.TTL)
	}
	if cfg.Cache.Backend == "sqlite" {
		cache += " at " + cfg.Cache.Path
	}
	fmt.Fprintf(w, "  Cache:      %s\n", cache)

	fmt.Fprintf(w, "  Catalogue:  %s\n", configured(cfg.Catalog.Email != ""))
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := config.WriteDefault(path, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
