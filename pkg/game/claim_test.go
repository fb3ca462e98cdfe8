package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClaimLink 消息按 encodeURIComponent 规则编码
func TestClaimLink(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"空格编码为 %20", "Hello there", "https://wa.me/905336746421?text=Hello%20there"},
		{"保留字符不编码", "Won! (100*)", "https://wa.me/905336746421?text=Won!%20(100*)"},
		{"保留符号编码", "a&b=c?d", "https://wa.me/905336746421?text=a%26b%3Dc%3Fd"},
		{"土耳其字符", "İndirim", "https://wa.me/905336746421?text=%C4%B0ndirim"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClaimLink("905336746421", tt.message))
		})
	}
}

// TestClaimerFallsBackToClipboard 浏览器打开失败时复制到剪贴板
func TestClaimerFallsBackToClipboard(t *testing.T) {
	var opened, copied string
	c := &Claimer{
		openURL:  func(link string) error { opened = link; return errors.New("no browser") },
		copyText: func(s string) error { copied = s; return nil },
	}

	link := c.Claim("90555", "hi")
	assert.Equal(t, "https://wa.me/90555?text=hi", link)
	assert.Equal(t, link, opened)
	assert.Equal(t, link, copied)
	assert.Equal(t, link, c.LastLink())
}

// TestClaimerBrowserSuccess 浏览器打开成功时不写剪贴板
func TestClaimerBrowserSuccess(t *testing.T) {
	copied := false
	c := &Claimer{
		openURL:  func(string) error { return nil },
		copyText: func(string) error { copied = true; return nil },
	}
	c.Claim("90555", "hi")
	assert.False(t, copied)
}

// TestClaimerBothFail 两者都失败时只记录日志
func TestClaimerBothFail(t *testing.T) {
	c := &Claimer{
		openURL:  func(string) error { return errors.New("no browser") },
		copyText: func(string) error { return errors.New("no clipboard") },
	}
	assert.NotPanics(t, func() { c.Claim("90555", "hi") })
}
