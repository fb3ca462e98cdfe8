// check_content 校验配置与两种语言的内容包
//
// 用法：
//
//	go run ./cmd/check_content            # 在仓库根目录运行
//	go run ./cmd/check_content --root ../report
package main

import (
	"fmt"
	"os"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/decker502/reportdeck/pkg/game"
	"github.com/spf13/cobra"
)

var root string

var checkCmd = &cobra.Command{
	Use:          "check_content",
	Short:        "Validate data/app.yaml, data/minigame.yaml and data/content/*.yaml",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&root, "root", ".", "repository root containing data/")
}

func runCheck(cmd *cobra.Command, args []string) error {
	embedded.InitFS(os.DirFS(root))

	failed := 0
	check := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: %v\n", name, err)
			failed++
			return
		}
		fmt.Printf("✅ %s\n", name)
	}

	_, err := config.LoadAppConfig(config.AppConfigPath)
	check(config.AppConfigPath, err)

	_, err = config.LoadMiniGameConfig(config.MiniGameConfigPath)
	check(config.MiniGameConfigPath, err)

	bundles := make(map[game.Language]*config.ContentData)
	for _, lang := range game.Languages {
		content, err := config.LoadContent(lang.BundlePath())
		check(lang.BundlePath(), err)
		if content != nil {
			bundles[lang] = content
		}
	}

	if len(bundles) == len(game.Languages) {
		for _, problem := range compareBundles(bundles[game.LanguageTR], bundles[game.LanguageEN]) {
			check("parity", fmt.Errorf("%s", problem))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Printf("✅ 所有内容包结构一致\n")
	return nil
}

// compareBundles 两种语言的条目数量与链接必须一致
func compareBundles(a, b *config.ContentData) []string {
	var problems []string
	counts := []struct {
		path string
		a, b int
	}{
		{"executive.stats", len(a.Executive.Stats), len(b.Executive.Stats)},
		{"uxui.items", len(a.UxUi.Items), len(b.UxUi.Items)},
		{"visual.items", len(a.Visual.Items), len(b.Visual.Items)},
		{"multimedia.items", len(a.Multimedia.Items), len(b.Multimedia.Items)},
		{"conclusion.items", len(a.Conclusion.Items), len(b.Conclusion.Items)},
	}
	for _, c := range counts {
		if c.a != c.b {
			problems = append(problems, fmt.Sprintf("%s: %d vs %d entries", c.path, c.a, c.b))
		}
	}

	linksA, linksB := a.Portfolio.Links(), b.Portfolio.Links()
	if len(linksA) != len(linksB) {
		return append(problems, fmt.Sprintf("portfolio links: %d vs %d", len(linksA), len(linksB)))
	}
	for i := range linksA {
		if linksA[i] != linksB[i] {
			problems = append(problems, fmt.Sprintf("portfolio link %d: %q vs %q", i, linksA[i], linksB[i]))
		}
	}
	return problems
}

func main() {
	if err := checkCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
