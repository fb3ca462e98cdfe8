package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本，"\n" 为强制换行，连续空行保留为空行
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, font, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, font *text.GoTextFace, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""
	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}
		// 单词本身超宽时按字符拆开
		if measureTextWidth(word, font) > maxWidth {
			pieces := breakWord(word, font, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
			continue
		}
		currentLine = word
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		test := current + string(r)
		if current != "" && measureTextWidth(test, font) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = test
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// TruncateText 超出最大宽度时截断并追加省略号
func TruncateText(textStr string, font *text.GoTextFace, maxWidth float64) string {
	if measureTextWidth(textStr, font) <= maxWidth {
		return textStr
	}
	runes := []rune(textStr)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + "…"
		if measureTextWidth(candidate, font) <= maxWidth {
			return candidate
		}
	}
	return ""
}
