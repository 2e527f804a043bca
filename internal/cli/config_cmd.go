package cli

import (
	"fmt"

	"github.com/rpgo/calckit/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user preferences",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with the defaults",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if config.Exists(path) && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultPreferences()); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	path := configPath()
	fmt.Fprintf(w, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Locale:       %s\n", prefs.Locale)
	fmt.Fprintf(w, "    Currency:     %s\n", prefs.Currency)
	fmt.Fprintf(w, "    Format:       %s\n", prefs.DefaultFormat)
	fmt.Fprintf(w, "    Compounding:  %d per year\n", prefs.DefaultCompounding)
	fmt.Fprintf(w, "    Inflation:    %.2f%%\n", prefs.DefaultInflationPercent)
	if prefs.OutputDir != "" {
		fmt.Fprintf(w, "    Output dir:   %s\n", prefs.OutputDir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Server]")
	fmt.Fprintf(w, "    Address:      %s\n", prefs.Server.Addr)
	fmt.Fprintf(w, "    Rate limit:   %d per %s\n", prefs.Server.RateLimit, prefs.Server.RateWindow.Duration)
	if prefs.Server.RedisAddr != "" {
		fmt.Fprintf(w, "    Redis:        %s\n", prefs.Server.RedisAddr)
	} else {
		fmt.Fprintln(w, "    Redis:        not configured")
	}
	return nil
}
