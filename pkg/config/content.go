package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/decker502/reportdeck/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ContentData 单一语言的完整内容对象
//
// 配置文件位置: data/content/<lang>.yaml
//
// 加载后不可变；切换语言时整体替换，不做任何字段合并。
type ContentData struct {
	Hero       HeroContent      `yaml:"hero"`
	Intro      IntroContent     `yaml:"intro"`
	Executive  Section          `yaml:"executive"`
	Portfolio  PortfolioContent `yaml:"portfolio"`
	UxUi       Section          `yaml:"uxui"`
	Visual     Section          `yaml:"visual"`
	Multimedia Section          `yaml:"multimedia"`
	Conclusion Section          `yaml:"conclusion"`
	UI         UILabels         `yaml:"ui"`
	Game       GameLabels       `yaml:"game"`
}

// HeroContent 封面页文本
type HeroContent struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	ReportTitle string `yaml:"reportTitle"`
}

// IntroContent 开场弹窗文本
type IntroContent struct {
	Welcome  string `yaml:"welcome"`
	Advisory string `yaml:"advisory"`
	Button   string `yaml:"button"`
}

// Section 通用内容章节（执行摘要、UX/UI、视觉、多媒体、结论共用）
type Section struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle,omitempty"`
	Body     Body          `yaml:"body"`
	Items    []SectionItem `yaml:"items,omitempty"`
	Stats    []Stat        `yaml:"stats,omitempty"`
	VideoURL string        `yaml:"videoUrl,omitempty"`
}

// SectionItem 章节中的卡片条目
type SectionItem struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Stat 数据指标
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// PortfolioContent 作品集页内容
type PortfolioContent struct {
	Title    string          `yaml:"title"`
	WebTitle string          `yaml:"webTitle"`
	AppTitle string          `yaml:"appTitle"`
	Websites []string        `yaml:"websites"`
	Apps     []PortfolioItem `yaml:"apps"`
	// ProfileURL 完整作品集链接（结论页底部），可为空
	ProfileURL   string `yaml:"profileUrl,omitempty"`
	ProfileLabel string `yaml:"profileLabel,omitempty"`
}

// Links 作品集页与结论页中所有可点击链接
// 顺序：网站、移动应用、完整作品集；下标即 input.KindOpenLink 事件的值
func (p PortfolioContent) Links() []string {
	links := make([]string, 0, len(p.Websites)+len(p.Apps)+1)
	links = append(links, p.Websites...)
	for _, app := range p.Apps {
		links = append(links, app.URL)
	}
	if p.ProfileURL != "" {
		links = append(links, p.ProfileURL)
	}
	return links
}

// PortfolioItem 移动应用条目
type PortfolioItem struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// UILabels 音频控制条标签
type UILabels struct {
	Play   string `yaml:"play"`
	Pause  string `yaml:"pause"`
	Mute   string `yaml:"mute"`
	Unmute string `yaml:"unmute"`
	Scroll string `yaml:"scroll"`
}

// GameLabels 小游戏文本
type GameLabels struct {
	StartTitle         string `yaml:"startTitle"`
	StartDesc          string `yaml:"startDesc"`
	MobileInstruction  string `yaml:"mobileInstruction"`
	DesktopInstruction string `yaml:"desktopInstruction"`
	GameOver           string `yaml:"gameOver"`
	TryAgain           string `yaml:"tryAgain"`
	Score              string `yaml:"score"`
	WinTitle           string `yaml:"winTitle"`
	WinDesc            string `yaml:"winDesc"`
	ClaimBtn           string `yaml:"claimBtn"`
	WAMessage          string `yaml:"waMessage"`
}

// Body 正文段落
// YAML 中既可以写成单个字符串，也可以写成字符串列表
type Body []string

// UnmarshalYAML 同时接受标量和序列两种写法
func (b *Body) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*b = Body{node.Value}
		return nil
	case yaml.SequenceNode:
		var paragraphs []string
		if err := node.Decode(&paragraphs); err != nil {
			return err
		}
		*b = Body(paragraphs)
		return nil
	default:
		return fmt.Errorf("line %d: body must be a string or a list of strings", node.Line)
	}
}

// String 以空行拼接所有段落
func (b Body) String() string {
	return strings.Join(b, "\n\n")
}

// LoadContent 从嵌入文件系统加载并校验内容包
//
// 参数:
//   - path: 内容包路径（如 "data/content/tr.yaml"）
//
// 返回:
//   - *ContentData: 校验通过的内容对象
//   - error: 读取、解析或校验失败
func LoadContent(path string) (*ContentData, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content bundle %s: %w", path, err)
	}

	content, err := ParseContent(data)
	if err != nil {
		return nil, fmt.Errorf("content bundle %s: %w", path, err)
	}
	return content, nil
}

// ParseContent 解析并校验 YAML 内容
func ParseContent(data []byte) (*ContentData, error) {
	var content ContentData
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}

	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	return &content, nil
}

// Validate 校验内容对象的完整性
// 返回第一个违规字段的路径
func (c *ContentData) Validate() error {
	required := []struct {
		path  string
		value string
	}{
		{"hero.name", c.Hero.Name},
		{"hero.role", c.Hero.Role},
		{"hero.reportTitle", c.Hero.ReportTitle},
		{"intro.welcome", c.Intro.Welcome},
		{"intro.advisory", c.Intro.Advisory},
		{"intro.button", c.Intro.Button},
		{"portfolio.title", c.Portfolio.Title},
		{"portfolio.webTitle", c.Portfolio.WebTitle},
		{"portfolio.appTitle", c.Portfolio.AppTitle},
		{"ui.play", c.UI.Play},
		{"ui.pause", c.UI.Pause},
		{"ui.mute", c.UI.Mute},
		{"ui.unmute", c.UI.Unmute},
		{"ui.scroll", c.UI.Scroll},
		{"game.startTitle", c.Game.StartTitle},
		{"game.startDesc", c.Game.StartDesc},
		{"game.mobileInstruction", c.Game.MobileInstruction},
		{"game.desktopInstruction", c.Game.DesktopInstruction},
		{"game.gameOver", c.Game.GameOver},
		{"game.tryAgain", c.Game.TryAgain},
		{"game.score", c.Game.Score},
		{"game.winTitle", c.Game.WinTitle},
		{"game.winDesc", c.Game.WinDesc},
		{"game.claimBtn", c.Game.ClaimBtn},
		{"game.waMessage", c.Game.WAMessage},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s cannot be empty", field.path)
		}
	}

	sections := []struct {
		name     string
		section  *Section
		minItems int
		minStats int
	}{
		{"executive", &c.Executive, 0, 1},
		{"uxui", &c.UxUi, 1, 0},
		{"visual", &c.Visual, 1, 0},
		{"multimedia", &c.Multimedia, 1, 0},
		{"conclusion", &c.Conclusion, 1, 0},
	}
	for _, s := range sections {
		if err := s.section.validate(s.name, s.minItems, s.minStats); err != nil {
			return err
		}
	}

	if len(c.Portfolio.Websites) == 0 {
		return fmt.Errorf("portfolio.websites cannot be empty")
	}
	for i, site := range c.Portfolio.Websites {
		if err := validateLink(site); err != nil {
			return fmt.Errorf("portfolio.websites[%d]: %w", i, err)
		}
	}

	if c.Portfolio.ProfileURL != "" {
		if strings.TrimSpace(c.Portfolio.ProfileLabel) == "" {
			return fmt.Errorf("portfolio.profileLabel is required when profileUrl is set")
		}
		if err := validateLink(c.Portfolio.ProfileURL); err != nil {
			return fmt.Errorf("portfolio.profileUrl: %w", err)
		}
	}

	if len(c.Portfolio.Apps) == 0 {
		return fmt.Errorf("portfolio.apps cannot be empty")
	}
	for i, app := range c.Portfolio.Apps {
		if strings.TrimSpace(app.Name) == "" {
			return fmt.Errorf("portfolio.apps[%d].name cannot be empty", i)
		}
		if err := validateLink(app.URL); err != nil {
			return fmt.Errorf("portfolio.apps[%d].url: %w", i, err)
		}
	}

	return nil
}

// validate 校验单个章节
func (s *Section) validate(name string, minItems, minStats int) error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%s.title cannot be empty", name)
	}
	if len(s.Body) == 0 || strings.TrimSpace(s.Body.String()) == "" {
		return fmt.Errorf("%s.body cannot be empty", name)
	}
	if len(s.Items) < minItems {
		return fmt.Errorf("%s.items must have at least %d entries, got %d", name, minItems, len(s.Items))
	}
	for i, item := range s.Items {
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Desc) == "" {
			return fmt.Errorf("%s.items[%d] requires title and desc", name, i)
		}
	}
	if len(s.Stats) < minStats {
		return fmt.Errorf("%s.stats must have at least %d entries, got %d", name, minStats, len(s.Stats))
	}
	for i, stat := range s.Stats {
		if strings.TrimSpace(stat.Label) == "" || strings.TrimSpace(stat.Value) == "" {
			return fmt.Errorf("%s.stats[%d] requires label and value", name, i)
		}
	}
	if s.VideoURL != "" {
		if err := validateLink(s.VideoURL); err != nil {
			return fmt.Errorf("%s.videoUrl: %w", name, err)
		}
	}
	return nil
}

// validateLink 链接必须是绝对 http(s) 地址
func validateLink(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

// DisplayDomain 返回网站链接的展示用域名
// 去掉 "https://"、"www." 以及第一个 "/"
func DisplayDomain(site string) string {
	domain := strings.Replace(site, "https://", "", 1)
	domain = strings.Replace(domain, "www.", "", 1)
	return strings.Replace(domain, "/", "", 1)
}
