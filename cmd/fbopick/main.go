// fbopick opens a 640x480 window that draws circles through a 480x360
// offscreen target and shows where a click lands after unprojection.
//
// Usage:
//
//	fbopick                        - reproduce the bug (legacy unprojection)
//	fbopick --mode fixed           - use the patched unprojection
//	fbopick --script bug.yaml      - replay a click script
//
// Flags:
//
//	--config <path>          - YAML config (default: ./fbopick.yaml or built-in)
//	--mode <legacy|fixed>    - override the unprojection mode
//	--script <path>          - YAML click script to replay
//	--screenshot-dir <path>  - where F12 and script screenshots go
//	--log-level <level>      - debug, info, warn or error
//	--no-overlay             - hide the debug text
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fbopick"
)

var (
	flagConfig        string
	flagMode          string
	flagScript        string
	flagScreenshotDir string
	flagLogLevel      string
	flagNoOverlay     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fbopick",
	Short: "Show where clicks land when unprojected through an offscreen target",
	Long: `fbopick draws circles into an offscreen target that is 0.75 the size of
the window and stretches it over the window. Each left click is unprojected
from the window into the target and from the target into the world.

Controls:
  Left click   - add a circle at the unprojected point
  Right click  - clear all circles (Ctrl+click works too)
  F            - toggle legacy/fixed unprojection
  C            - clear all circles
  O            - toggle the debug overlay
  F12          - save a screenshot
  Esc          - quit

Examples:
  fbopick
  fbopick --mode fixed
  fbopick --script scripts/bug.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "Unprojection mode: legacy or fixed")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "Path to a click script YAML")
	rootCmd.Flags().StringVar(&flagScreenshotDir, "screenshot-dir", "", "Screenshot output directory")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagNoOverlay, "no-overlay", false, "Hide the debug overlay")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := fbopick.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg); err != nil {
		return err
	}

	logger, err := fbopick.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	opts := []fbopick.Option{fbopick.WithLogger(logger)}

	if flagScript != "" {
		runner, err := fbopick.LoadScriptFile(flagScript)
		if err != nil {
			return err
		}
		opts = append(opts, fbopick.WithScript(runner))
		logger.Info("script loaded", "path", flagScript)
	}

	return fbopick.Run(cfg, opts...)
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *fbopick.Config) error {
	if flagMode != "" {
		m, err := fbopick.ParseMode(flagMode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	if flagScreenshotDir != "" {
		cfg.ScreenshotDir = flagScreenshotDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoOverlay {
		cfg.Overlay = false
	}
	return nil
}
