package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// elementWithText 文本一律作为文本节点插入，序列化时自动转义
func elementWithText(a atom.Atom, s string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(textNode(s))
	return n
}

func class(name string) html.Attribute {
	return html.Attribute{Key: "class", Val: name}
}

// Clear 移除容器的全部子节点
func Clear(container *html.Node) {
	for c := container.FirstChild; c != nil; {
		next := c.NextSibling
		container.RemoveChild(c)
		c = next
	}
}

// ReplaceText 用一段纯文本替换容器内容
func ReplaceText(container *html.Node, s string) {
	Clear(container)
	container.AppendChild(textNode(s))
}
