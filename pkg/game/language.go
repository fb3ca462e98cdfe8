package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language 报告语言
type Language string

const (
	LanguageTR Language = "TR"
	LanguageEN Language = "EN"
)

// Languages 所有支持的语言，按切换顺序
var Languages = []Language{LanguageTR, LanguageEN}

// ParseLanguage 解析语言代码（不区分大小写）
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case LanguageTR:
		return LanguageTR, nil
	case LanguageEN:
		return LanguageEN, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want TR or EN)", s)
	}
}

// Toggle 返回另一种语言
func (l Language) Toggle() Language {
	if l == LanguageTR {
		return LanguageEN
	}
	return LanguageTR
}

// Tag 返回对应的 BCP 47 语言标签
func (l Language) Tag() language.Tag {
	if l == LanguageTR {
		return language.Turkish
	}
	return language.English
}

// BundlePath 返回该语言内容包的嵌入路径
func (l Language) BundlePath() string {
	return "data/content/" + strings.ToLower(string(l)) + ".yaml"
}

// upperCasers 每种语言一个大写转换器
// cases.Caser 不是并发安全的，只在游戏主循环中使用
var upperCasers = map[Language]cases.Caser{
	LanguageTR: cases.Upper(language.Turkish),
	LanguageEN: cases.Upper(language.English),
}

// Upper 按语言规则转为大写（土耳其语中 i → İ）
func (l Language) Upper(s string) string {
	c, ok := upperCasers[l]
	if !ok {
		return strings.ToUpper(s)
	}
	return c.String(s)
}
