// marblemaze is a tilt-controlled marble maze. Roll the marble through walls
// and spinning vortices, collect coins and reach the flag.
//
// Usage:
//
//	marblemaze                  - Play the default level
//	marblemaze --level level2   - Play an embedded level or a level file
//	marblemaze check [level...] - Parse and compile levels without a window
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagDebug    bool
	flagWatch    bool
	flagPointer  bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marblemaze",
	Short: "Tilt the marble through the maze",
	Long: `marblemaze rolls a marble through a grid maze. On a phone the
accelerometer tilts the board; on the desktop the marble is pulled towards
the touch or mouse position.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(flagLogLevel)
	},
	RunE:          runGame,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level name in levels/ or path to a level file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw physics shapes and stats")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Rebuild the level when prefabs/ or levels/ change on disk")
	rootCmd.Flags().BoolVar(&flagPointer, "pointer", false, "Use the pointer even when an accelerometer is available")

	rootCmd.AddCommand(checkCmd)
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "marblemaze",
	})
	logger.SetLevel(lvl)
	log.SetDefault(logger)
	return nil
}

func runGame(_ *cobra.Command, _ []string) error {
	game, err := NewGame(GameOptions{
		Level:   flagLevel,
		Debug:   flagDebug,
		Watch:   flagWatch,
		Pointer: flagPointer,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	w, h := game.Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("marblemaze")
	ebiten.SetTPS(ebiten.DefaultTPS)

	return ebiten.RunGame(game)
}
