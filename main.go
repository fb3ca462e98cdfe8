package main

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/reportdeck/pkg/app"
	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var appConfig app.Config

var rootCmd = &cobra.Command{
	Use:   "reportdeck",
	Short: "Bilingual UX/UI portfolio report",
	Long: `Runs the interactive report: seven slides, background music,
and the "Design Hunter" mini-game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&appConfig.Language, "lang", "", "start language (TR or EN); defaults to the last choice")
	flags.BoolVarP(&appConfig.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&appConfig.Fullscreen, "fullscreen", false, "start in fullscreen")
	flags.BoolVar(&appConfig.NoAudio, "no-audio", false, "disable background music")
	flags.BoolVar(&appConfig.SkipIntro, "skip-intro", false, "skip the intro modal")
}

func run(cmd *cobra.Command, args []string) error {
	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	reportApp, err := app.NewApp(appConfig)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer reportApp.Close()

	window := reportApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(reportApp); err != nil {
		return err
	}
	log.Printf("[Main] Window closed")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
