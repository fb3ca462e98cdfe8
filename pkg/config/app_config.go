package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/decker502/reportdeck/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// AppConfigPath 应用配置文件的嵌入路径
const AppConfigPath = "data/app.yaml"

// AppConfig 应用配置
//
// 配置文件位置: data/app.yaml
type AppConfig struct {
	Window          WindowConfig     `yaml:"window"`
	DefaultLanguage string           `yaml:"defaultLanguage"` // TR 或 EN
	Audio           AudioConfig      `yaml:"audio"`
	Navigation      NavigationConfig `yaml:"navigation"`
	Claim           ClaimConfig      `yaml:"claim"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AudioConfig 背景音乐配置
type AudioConfig struct {
	// Source 音轨来源：http(s) URL 或 data/ 下的嵌入路径
	Source string `yaml:"source"`

	// FadeTarget 首次激活时淡入的目标音量
	FadeTarget float64 `yaml:"fadeTarget"`

	// FadeStep 每次淡入增加的音量
	FadeStep float64 `yaml:"fadeStep"`

	// FadeIntervalMs 淡入步进间隔（毫秒）
	FadeIntervalMs int `yaml:"fadeIntervalMs"`

	// FetchTimeoutMs 远程音轨下载超时（毫秒）
	FetchTimeoutMs int `yaml:"fetchTimeoutMs"`
}

// NavigationConfig 幻灯片导航配置
type NavigationConfig struct {
	// TransitionMs 切换防抖时长（毫秒），期间忽略新的导航请求
	TransitionMs int `yaml:"transitionMs"`

	// WheelThreshold 滚轮噪声阈值（像素单位）
	WheelThreshold float64 `yaml:"wheelThreshold"`

	// WheelLineHeight 滚轮每"行"换算成的像素数
	// Ebitengine 按行报告滚轮偏移，浏览器按像素报告
	WheelLineHeight float64 `yaml:"wheelLineHeight"`

	// SwipeThreshold 触摸滑动距离阈值（像素）
	SwipeThreshold float64 `yaml:"swipeThreshold"`
}

// ClaimConfig 折扣领取配置
type ClaimConfig struct {
	// Phone WhatsApp 号码（国际格式，不带 +）
	Phone string `yaml:"phone"`
}

// DefaultAppConfig 返回默认应用配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "UX/UI Report",
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		DefaultLanguage: "TR",
		Audio: AudioConfig{
			FadeTarget:     0.5,
			FadeStep:       0.05,
			FadeIntervalMs: 100,
			FetchTimeoutMs: 15000,
		},
		Navigation: NavigationConfig{
			TransitionMs:    1000,
			WheelThreshold:  15,
			WheelLineHeight: 40,
			SwipeThreshold:  30,
		},
	}
}

// LoadAppConfig 从嵌入文件系统加载应用配置
// 文件中缺省的字段保留 DefaultAppConfig 的值
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析并校验应用配置
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	cfg.DefaultLanguage = strings.ToUpper(strings.TrimSpace(cfg.DefaultLanguage))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.DefaultLanguage != "TR" && c.DefaultLanguage != "EN" {
		return fmt.Errorf("defaultLanguage must be TR or EN, got %q", c.DefaultLanguage)
	}

	if c.Audio.FadeTarget <= 0 || c.Audio.FadeTarget > 1 {
		return fmt.Errorf("audio.fadeTarget must be in (0, 1], got %v", c.Audio.FadeTarget)
	}
	if c.Audio.FadeStep <= 0 || c.Audio.FadeStep > c.Audio.FadeTarget {
		return fmt.Errorf("audio.fadeStep must be in (0, fadeTarget], got %v", c.Audio.FadeStep)
	}
	if c.Audio.FadeIntervalMs <= 0 {
		return fmt.Errorf("audio.fadeIntervalMs must be positive, got %d", c.Audio.FadeIntervalMs)
	}
	if c.Audio.FetchTimeoutMs <= 0 {
		return fmt.Errorf("audio.fetchTimeoutMs must be positive, got %d", c.Audio.FetchTimeoutMs)
	}

	if c.Navigation.TransitionMs <= 0 {
		return fmt.Errorf("navigation.transitionMs must be positive, got %d", c.Navigation.TransitionMs)
	}
	if c.Navigation.WheelThreshold < 0 || c.Navigation.SwipeThreshold < 0 {
		return fmt.Errorf("navigation thresholds cannot be negative")
	}
	if c.Navigation.WheelLineHeight <= 0 {
		return fmt.Errorf("navigation.wheelLineHeight must be positive, got %v", c.Navigation.WheelLineHeight)
	}

	phone := strings.TrimSpace(c.Claim.Phone)
	if phone == "" {
		return fmt.Errorf("claim.phone cannot be empty")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("claim.phone must contain digits only, got %q", c.Claim.Phone)
		}
	}

	return nil
}

// TransitionDuration 返回切换防抖时长
func (n NavigationConfig) TransitionDuration() time.Duration {
	return time.Duration(n.TransitionMs) * time.Millisecond
}

// FadeInterval 返回淡入步进间隔
func (a AudioConfig) FadeInterval() time.Duration {
	return time.Duration(a.FadeIntervalMs) * time.Millisecond
}

// FetchTimeout 返回远程音轨下载超时
func (a AudioConfig) FetchTimeout() time.Duration {
	return time.Duration(a.FetchTimeoutMs) * time.Millisecond
}

// IsRemote 音轨是否需要通过网络获取
func (a AudioConfig) IsRemote() bool {
	return strings.HasPrefix(a.Source, "http://") || strings.HasPrefix(a.Source, "https://")
}
