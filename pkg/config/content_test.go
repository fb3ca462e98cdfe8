package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadShippedContent(t *testing.T, lang string) *ContentData {
	t.Helper()
	data, err := os.ReadFile("../../data/content/" + lang + ".yaml")
	require.NoError(t, err)

	content, err := ParseContent(data)
	require.NoError(t, err, "content bundle %s should be valid", lang)
	return content
}

// TestShippedContentBundles 两种语言的内容包都应通过校验且结构一致
func TestShippedContentBundles(t *testing.T) {
	tr := loadShippedContent(t, "tr")
	en := loadShippedContent(t, "en")

	assert.Equal(t, tr.Hero.Name, en.Hero.Name)
	assert.Equal(t, tr.Portfolio.Websites, en.Portfolio.Websites)
	assert.Len(t, en.Portfolio.Websites, 13)
	assert.Len(t, en.Portfolio.Apps, 5)
	assert.Len(t, en.Executive.Stats, 4)
	assert.Len(t, tr.UxUi.Items, len(en.UxUi.Items))
	assert.Len(t, tr.Conclusion.Items, len(en.Conclusion.Items))

	assert.NotEqual(t, tr.Game.WAMessage, en.Game.WAMessage)
	assert.Equal(t, "Score", en.Game.Score)
	assert.Equal(t, "Puan", tr.Game.Score)
}

// TestBodyUnmarshal 测试正文的两种写法
func TestBodyUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Body
		wantErr bool
	}{
		{"单个字符串", `body: "one"`, Body{"one"}, false},
		{"字符串列表", "body:\n  - one\n  - two", Body{"one", "two"}, false},
		{"映射非法", "body: {a: b}", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Section
			err := yaml.Unmarshal([]byte(tt.yaml), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Body)
		})
	}

	assert.Equal(t, "one\n\ntwo", Body{"one", "two"}.String())
}

// TestContentValidate 测试内容校验
func TestContentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ContentData)
		wantErr string
	}{
		{"缺少姓名", func(c *ContentData) { c.Hero.Name = " " }, "hero.name"},
		{"缺少领取文案", func(c *ContentData) { c.Game.WAMessage = "" }, "game.waMessage"},
		{"摘要没有指标", func(c *ContentData) { c.Executive.Stats = nil }, "executive.stats"},
		{"结论没有条目", func(c *ContentData) { c.Conclusion.Items = nil }, "conclusion.items"},
		{"条目缺少描述", func(c *ContentData) { c.Visual.Items[0].Desc = "" }, "visual.items[0]"},
		{"网站非 http", func(c *ContentData) { c.Portfolio.Websites[2] = "ftp://x.com" }, "portfolio.websites[2]"},
		{"应用缺少链接", func(c *ContentData) { c.Portfolio.Apps[1].URL = "" }, "portfolio.apps[1].url"},
		{"作品集链接缺少文案", func(c *ContentData) { c.Portfolio.ProfileLabel = "" }, "portfolio.profileLabel"},
		{"作品集链接非法", func(c *ContentData) { c.Portfolio.ProfileURL = "behance" }, "portfolio.profileUrl"},
		{"视频链接无主机", func(c *ContentData) { c.Multimedia.VideoURL = "https://" }, "multimedia.videoUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadShippedContent(t, "en")
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should mention %q", err.Error(), tt.wantErr)
		})
	}
}

// TestPortfolioLinks 链接顺序：网站、应用、完整作品集
func TestPortfolioLinks(t *testing.T) {
	p := PortfolioContent{
		Websites:   []string{"https://a.com/", "https://b.com/"},
		Apps:       []PortfolioItem{{Name: "App", URL: "https://play.google.com/x"}},
		ProfileURL: "https://www.behance.net/x",
	}
	assert.Equal(t, []string{
		"https://a.com/",
		"https://b.com/",
		"https://play.google.com/x",
		"https://www.behance.net/x",
	}, p.Links())

	p.ProfileURL = ""
	assert.Len(t, p.Links(), 3)
}

// TestDisplayDomain 测试作品集域名展示
func TestDisplayDomain(t *testing.T) {
	tests := []struct {
		site string
		want string
	}{
		{"https://ezanvaktipro.com/", "ezanvaktipro.com"},
		{"https://www.sistemglobal.com.tr/", "sistemglobal.com.tr"},
		{"https://kutuphanem.kocaeli.bel.tr/", "kutuphanem.kocaeli.bel.tr"},
		// 只移除第一个斜杠
		{"https://example.com/a/b", "example.coma/b"},
		{"http://example.com/", "http:/example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.site, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayDomain(tt.site))
		})
	}
}
