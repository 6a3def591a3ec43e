package render

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/chart"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/logger"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

// NoResultsText 没有任何实体时显示的文本
const NoResultsText = "Could not identify any places"

// Renderer 把一次搜索响应映射成结果视图
type Renderer struct {
	markdown  Markdown
	sanitizer Sanitizer
}

// Option 渲染器选项
type Option func(*Renderer)

// WithMarkdown 替换 markdown 渲染器
func WithMarkdown(md Markdown) Option {
	return func(r *Renderer) { r.markdown = md }
}

// WithSanitizer 替换 HTML 清洗策略
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) { r.sanitizer = s }
}

// NewRenderer 创建渲染器，默认使用 blackfriday + bluemonday
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		markdown:  Blackfriday,
		sanitizer: NewSanitizer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render 清空容器并按固定顺序重新构建：综合点评、行程、实体、评论表。
// 没有实体时容器只保留 NoResultsText。
func (r *Renderer) Render(resp *model.SearchResponse, container *html.Node) error {
	Clear(container)
	if resp == nil {
		resp = &model.SearchResponse{}
	}
	trace(resp)

	if len(resp.Entities) == 0 {
		ReplaceText(container, NoResultsText)
		return nil
	}

	if resp.GeminiReview != "" {
		div := element(atom.Div, class("gemini-review"))
		nodes, err := markdownNodes(r.markdown, r.sanitizer, resp.GeminiReview)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			div.AppendChild(n)
		}
		container.AppendChild(div)
	}

	if resp.TravelInfo != nil {
		div := element(atom.Div, class("travel-info"))
		div.AppendChild(elementWithText(atom.H2, "Travel Information"))
		div.AppendChild(elementWithText(atom.P, "Distance: "+resp.TravelInfo.Distance))
		div.AppendChild(elementWithText(atom.P, "Duration: "+resp.TravelInfo.Duration))
		container.AppendChild(div)
	}

	for i := range resp.Entities {
		block, err := entityBlock(&resp.Entities[i])
		if err != nil {
			return err
		}
		container.AppendChild(block)
	}

	container.AppendChild(ReviewTable(resp.Entities))
	return nil
}

func entityBlock(e *model.Entity) (*html.Node, error) {
	logger.Log.Debugf("processing entity: %s", e.Name)

	div := element(atom.Div, class("entity"))
	div.AppendChild(elementWithText(atom.H2, e.Name))

	charts := []struct {
		src chart.Source
		m   *model.SentimentMap
	}{
		{chart.SourceGoogle, e.GoogleSentiment},
		{chart.SourceReddit, e.RedditSentiment},
	}
	for _, c := range charts {
		if c.m == nil {
			continue
		}
		canvas, err := chart.Canvas(e.Name, c.src, c.m)
		if err != nil {
			return nil, err
		}
		div.AppendChild(canvas)
	}

	if e.Weather != nil {
		div.AppendChild(elementWithText(atom.H3, "Weekend Weather"))
		if e.Weather.Saturday != nil {
			div.AppendChild(elementWithText(atom.P, weatherLine("Saturday", e.Weather.Saturday)))
		}
		if e.Weather.Sunday != nil {
			div.AppendChild(elementWithText(atom.P, weatherLine("Sunday", e.Weather.Sunday)))
		}
	}

	if e.PositiveSummary != "" {
		div.AppendChild(summary("Positive Summary:", e.PositiveSummary))
	}
	if e.NegativeSummary != "" {
		div.AppendChild(summary("Negative Summary:", e.NegativeSummary))
	}

	return div, nil
}

func summary(label, text string) *html.Node {
	div := element(atom.Div)
	div.AppendChild(elementWithText(atom.Strong, label))
	div.AppendChild(textNode(" " + text))
	return div
}

func trace(resp *model.SearchResponse) {
	if !logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Log.Debugf("received data (unprintable): %v", err)
		return
	}
	logger.Log.Debugf("received data: %s", data)
}
