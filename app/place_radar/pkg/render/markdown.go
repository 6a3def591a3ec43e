package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown markdown -> HTML 的外部协作者
type Markdown interface {
	ToHTML(src []byte) []byte
}

// Sanitizer 不可信 HTML 进入页面前的白名单清洗边界
type Sanitizer interface {
	SanitizeBytes(b []byte) []byte
}

// MarkdownFunc 让普通函数实现 Markdown
type MarkdownFunc func(src []byte) []byte

func (f MarkdownFunc) ToHTML(src []byte) []byte { return f(src) }

// Blackfriday 默认的 markdown 渲染器
var Blackfriday = MarkdownFunc(func(src []byte) []byte {
	return blackfriday.Run(src)
})

// NewSanitizer 默认策略：允许常见的排版标签，去掉脚本、事件属性和危险链接
func NewSanitizer() *bluemonday.Policy {
	return bluemonday.UGCPolicy()
}

// markdownNodes 渲染、清洗并解析成可以直接挂到 div 下的节点
func markdownNodes(md Markdown, sanitizer Sanitizer, src string) ([]*html.Node, error) {
	out := sanitizer.SanitizeBytes(md.ToHTML([]byte(src)))

	nodes, err := html.ParseFragment(bytes.NewReader(out), element(atom.Div))
	if err != nil {
		return nil, fmt.Errorf("parse markdown html failed: %w", err)
	}
	return nodes, nil
}
