package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// 五个固定的情感标签
const (
	LabelHighlyPositive = "Highly Positive"
	LabelPositive       = "Positive"
	LabelNeutral        = "Neutral"
	LabelNegative       = "Negative"
	LabelHighlyNegative = "Highly Negative"
)

// SentimentLabels 按严重程度排列的已知标签
var SentimentLabels = []string{
	LabelHighlyPositive,
	LabelPositive,
	LabelNeutral,
	LabelNegative,
	LabelHighlyNegative,
}

// SentimentMap 情感标签 -> 数量，保留 JSON 中的键顺序
type SentimentMap = orderedmap.OrderedMap[string, float64]

// NewSentimentMap 按给定顺序构造情感分布
func NewSentimentMap(pairs ...orderedmap.Pair[string, float64]) *SentimentMap {
	return orderedmap.New[string, float64](orderedmap.WithInitialData(pairs...))
}

// SearchResponse 后端 /search 的响应体，所有字段都可缺省
type SearchResponse struct {
	GeminiReview string      `json:"gemini_review,omitempty"` // Markdown 格式的综合点评
	TravelInfo   *TravelInfo `json:"travel_info,omitempty"`
	Entities     []Entity    `json:"entities,omitempty"`
}

// TravelInfo 前两个地点之间的行程信息
type TravelInfo struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// Entity 搜索识别出的地点/商家
type Entity struct {
	Name            string        `json:"name"` // 同一响应内唯一，用于生成图表 id
	GoogleSentiment *SentimentMap `json:"google_sentiment,omitempty"`
	RedditSentiment *SentimentMap `json:"reddit_sentiment,omitempty"`
	Weather         *Weather      `json:"weather,omitempty"`
	PositiveSummary string        `json:"positive_summary,omitempty"`
	NegativeSummary string        `json:"negative_summary,omitempty"`
	Reviews         []Review      `json:"reviews,omitempty"`
	Latitude        *float64      `json:"latitude,omitempty"`
	Longitude       *float64      `json:"longitude,omitempty"`
}

// Weather 周末天气
type Weather struct {
	Saturday *DayWeather `json:"Saturday,omitempty"`
	Sunday   *DayWeather `json:"Sunday,omitempty"`
}

// DayWeather 单日天气预报
type DayWeather struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"` // 华氏度
	Description string  `json:"description"`
}

// Review 单条评论
type Review struct {
	Source    string   `json:"source"`
	Text      string   `json:"text"`
	Rating    *float64 `json:"rating"` // null 表示无评分
	Sentiment string   `json:"sentiment"`
	Date      string   `json:"date,omitempty"`
	User      string   `json:"user,omitempty"`
}

// SearchRequest 发往后端的请求体
type SearchRequest struct {
	Query string `json:"query"`
}
