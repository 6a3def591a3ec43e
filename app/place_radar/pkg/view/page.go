package view

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// 页面中固定的元素 id
const (
	FormID    = "searchForm"
	QueryID   = "queryInput"
	ResultsID = "results"
)

//go:embed assets/index.html
var indexHTML []byte

// Page 一份完整的结果页文档，结果容器由渲染器独占
type Page struct {
	doc     *html.Node
	query   *html.Node
	results *html.Node
}

// NewPage 解析内置模板，返回一份全新的空白页面
func NewPage() (*Page, error) {
	doc, err := html.Parse(bytes.NewReader(indexHTML))
	if err != nil {
		return nil, fmt.Errorf("parse page template failed: %w", err)
	}

	p := &Page{
		doc:     doc,
		query:   FindByID(doc, QueryID),
		results: FindByID(doc, ResultsID),
	}
	if p.query == nil || p.results == nil {
		return nil, fmt.Errorf("page template is missing #%s or #%s", QueryID, ResultsID)
	}
	return p, nil
}

// Results 结果容器
func (p *Page) Results() *html.Node {
	return p.results
}

// SetQuery 回填输入框，便于在结果页上继续查询
func (p *Page) SetQuery(q string) {
	for i, a := range p.query.Attr {
		if a.Key == "value" {
			p.query.Attr[i].Val = q
			return
		}
	}
	p.query.Attr = append(p.query.Attr, html.Attribute{Key: "value", Val: q})
}

// Render 输出整份文档
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc)
}

// FindByID 深度优先查找第一个 id 匹配的元素
func FindByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
