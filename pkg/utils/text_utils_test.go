package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := testFace(t, 22)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{"短文本不换行", "Kısa metin", 1000, 1},
		{"长文本自动换行", "A digital ecosystem touching the lives of over 10 Million users across every screen.", 300, 2},
		{"强制换行", "first\n\nsecond", 1000, 3},
		{"空文本", "", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("行数: got %d, want >= %d (%q)", len(lines), tt.expectMin, lines)
			}
			for _, line := range lines {
				if w := measureTextWidth(line, font); w > tt.maxWidth && !strings.Contains(line, " ") && len([]rune(line)) > 1 {
					t.Errorf("行 %q 宽度 %.1f 超过 %.1f", line, w, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 换行只在空格处断开
func TestWrapTextKeepsWords(t *testing.T) {
	font := testFace(t, 20)
	input := "Tajweed color-coding Focus Mode Arrow Tracking customizable typography"

	lines := WrapText(input, font, 220)
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("重新拼接: got %q, want %q", got, input)
	}
}

// TestWrapTextLongWord 超长单词按字符断开
func TestWrapTextLongWord(t *testing.T) {
	font := testFace(t, 20)
	word := "kbbbilimmerkezi.netlify.app"

	lines := WrapText(word, font, 60)
	if len(lines) < 2 {
		t.Fatalf("行数: got %d, want >= 2", len(lines))
	}
	if got := strings.Join(lines, ""); got != word {
		t.Errorf("拼接: got %q, want %q", got, word)
	}
}

// TestTruncateText 测试截断
func TestTruncateText(t *testing.T) {
	font := testFace(t, 20)

	if got := TruncateText("short", font, 1000); got != "short" {
		t.Errorf("不需要截断: got %q", got)
	}

	got := TruncateText("engelsizyasam.kocaeli.bel.tr", font, 80)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("截断结果应以省略号结尾: got %q", got)
	}
	if w := measureTextWidth(got, font); w > 80 {
		t.Errorf("截断后宽度: got %.1f, want <= 80", w)
	}
}
