package chart

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

// CanvasSize 缩略图尺寸 (px)，与数据量无关
const CanvasSize = 100

// AttrConfig canvas 上存放图表配置的属性，由页面脚本读取
const AttrConfig = "data-chart"

// Source 情感数据来源
type Source int

const (
	SourceGoogle Source = iota
	SourceReddit
)

// Title 图表标题
func (s Source) Title() string {
	switch s {
	case SourceReddit:
		return "Reddit Reviews Sentiment"
	default:
		return "Google Reviews Sentiment"
	}
}

// ID 由实体名派生 canvas id，同名实体会冲突
func (s Source) ID(name string) string {
	switch s {
	case SourceReddit:
		return "reddit-chart-" + name
	default:
		return "google-chart-" + name
	}
}

var palette = map[string]string{
	model.LabelHighlyPositive: "darkgreen",
	model.LabelPositive:       "lightgreen",
	model.LabelNeutral:        "lightgray",
	model.LabelNegative:       "lightcoral",
	model.LabelHighlyNegative: "darkred",
}

// Color 返回标签的固定颜色；未知标签返回 false，由图表库使用默认颜色
func Color(label string) (string, bool) {
	c, ok := palette[label]
	return c, ok
}

// Config 声明式饼图配置，字段与 Chart.js 配置结构一致
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset 中 BackgroundColor 的空字符串表示使用图表库默认色
type Dataset struct {
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

type Options struct {
	Plugins Plugins `json:"plugins"`
}

type Plugins struct {
	Title  Title  `json:"title"`
	Legend Legend `json:"legend"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type Legend struct {
	Labels LegendLabels `json:"labels"`
}

// LegendLabels 图例颜色覆盖表，页面脚本在 generateLabels 里按文本重新着色
type LegendLabels struct {
	ColorMap map[string]string `json:"colorMap"`
}

// LegendItem 图表库生成的单个图例项
type LegendItem struct {
	Text        string
	FillStyle   string
	StrokeStyle string
}

// Build 把情感分布映射成饼图配置，标签与数值保持输入顺序
func Build(m *model.SentimentMap, src Source) Config {
	labels := make([]string, 0, m.Len())
	data := make([]float64, 0, m.Len())
	colors := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		labels = append(labels, pair.Key)
		data = append(data, pair.Value)
		c, _ := Color(pair.Key)
		colors = append(colors, c)
	}

	return Config{
		Type: "pie",
		Data: Data{
			Labels:   labels,
			Datasets: []Dataset{{Data: data, BackgroundColor: colors}},
		},
		Options: Options{
			Plugins: Plugins{
				Title:  Title{Display: true, Text: src.Title()},
				Legend: Legend{Labels: LegendLabels{ColorMap: legendColorMap()}},
			},
		},
	}
}

// RecolorLegend 覆盖图表库自动分配的图例颜色，已知标签一律使用固定颜色。
// 页面脚本的 generateLabels 按 colorMap 做同样的覆盖，colorMap 由本函数生成。
func RecolorLegend(items []LegendItem) []LegendItem {
	out := make([]LegendItem, len(items))
	for i, item := range items {
		if c, ok := Color(item.Text); ok {
			item.FillStyle = c
			item.StrokeStyle = c
		}
		out[i] = item
	}
	return out
}

// legendColorMap 对全部已知标签执行一次 RecolorLegend，结果交给页面脚本
func legendColorMap() map[string]string {
	items := make([]LegendItem, len(model.SentimentLabels))
	for i, label := range model.SentimentLabels {
		items[i] = LegendItem{Text: label}
	}

	colorMap := make(map[string]string, len(items))
	for _, item := range RecolorLegend(items) {
		if item.FillStyle != "" {
			colorMap[item.Text] = item.FillStyle
		}
	}
	return colorMap
}

// Canvas 生成承载图表的 canvas 节点，配置以 JSON 放在 data-chart 属性中
func Canvas(name string, src Source, m *model.SentimentMap) (*html.Node, error) {
	cfg, err := json.Marshal(Build(m, src))
	if err != nil {
		return nil, fmt.Errorf("marshal chart config failed: %w", err)
	}

	size := strconv.Itoa(CanvasSize)
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Canvas,
		Data:     "canvas",
		Attr: []html.Attribute{
			{Key: "id", Val: src.ID(name)},
			{Key: "width", Val: size},
			{Key: "height", Val: size},
			{Key: AttrConfig, Val: string(cfg)},
		},
	}, nil
}
