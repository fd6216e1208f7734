package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/philipparndt/blueprint/internal/app"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	windowed   bool
	frameRate  int
)

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Grid snapping full-screen drawing tool",
	Long: `Blueprint is a full-screen drawing tool. The mouse cursor snaps to a
grid and lines, circles and Bezier curves are placed point by point.

Press M to leave the menu, ESC to quit.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := hclog.LevelFromString(logLevel)
		if level == hclog.NoLevel {
			return errors.Errorf("invalid log level %q", logLevel)
		}
		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "blueprint",
			Level:  level,
			Output: os.Stderr,
		})

		return app.Run(app.Options{
			ConfigPath: configPath,
			Windowed:   windowed,
			FrameRate:  frameRate,
			Logger:     logger,
		})
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the TOML config file")
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&windowed, "windowed", "w", false, "run in a window instead of full screen")
	flags.IntVar(&frameRate, "fps", 0, "frame rate cap, overrides the config when set")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
