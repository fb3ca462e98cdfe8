package game

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// claimBaseURL 聊天跳转地址
const claimBaseURL = "https://wa.me/"

// uriComponentFixes 把 QueryEscape 的结果修正为 encodeURIComponent 的形式
// 空格编码为 %20，保留字符 ! ' ( ) * 不编码
var uriComponentFixes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ClaimLink 生成带预填消息的聊天链接
func ClaimLink(phone, message string) string {
	return fmt.Sprintf("%s%s?text=%s", claimBaseURL, phone, uriComponentFixes.Replace(url.QueryEscape(message)))
}

// Claimer 打开外部链接（领取链接与作品集链接）
// 优先在浏览器中打开；失败时把链接复制到剪贴板。两者都失败只记录日志。
type Claimer struct {
	openURL  func(string) error
	copyText func(string) error

	lastLink string
}

// NewClaimer 创建使用系统浏览器与剪贴板的 Claimer
func NewClaimer() *Claimer {
	return &Claimer{
		openURL:  browser.OpenURL,
		copyText: clipboard.WriteAll,
	}
}

// Claim 打开领取链接，返回链接本身
func (c *Claimer) Claim(phone, message string) string {
	link := ClaimLink(phone, message)
	c.Open(link)
	return link
}

// Open 在浏览器中打开链接，失败时复制到剪贴板
func (c *Claimer) Open(link string) {
	c.lastLink = link

	err := c.openURL(link)
	if err == nil {
		log.Printf("[Claim] Opened %s", link)
		return
	}
	log.Printf("[Claim] Failed to open browser: %v (copying link to clipboard)", err)

	if err := c.copyText(link); err != nil {
		log.Printf("[Claim] Failed to copy link to clipboard: %v", err)
	}
}

// LastLink 最近一次领取的链接
func (c *Claimer) LastLink() string {
	return c.lastLink
}
