package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// 响应体只要求是合法 JSON。可选字段类型不符时按缺省处理，不让整个响应失败。

type fields map[string]json.RawMessage

// objectFields 非对象 (包括 null) 返回 false
func objectFields(raw json.RawMessage) (fields, bool) {
	if !isObject(raw) {
		return nil, false
	}
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, false
	}
	return f, true
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	return len(raw) > 0 && raw[0] == '{'
}

func (f fields) str(key string) string {
	var s string
	if raw, ok := f[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// number 接受 JSON 数字和数字字符串
func (f fields) number(key string) (float64, bool) {
	raw, ok := f[key]
	if !ok {
		return 0, false
	}
	return parseNumber(raw)
}

func (f fields) numberPtr(key string) *float64 {
	v, ok := f.number(key)
	if !ok {
		return nil
	}
	return &v
}

// array 非数组时返回 nil
func (f fields) array(key string) []json.RawMessage {
	var items []json.RawMessage
	if raw, ok := f[key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
	}
	return items
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// decodeSentiment 按出现顺序读取标签，数值无法识别的标签跳过
func decodeSentiment(raw json.RawMessage) *SentimentMap {
	if !isObject(raw) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil
	}

	m := NewSentimentMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		label, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			break
		}
		if v, ok := parseNumber(value); ok {
			m.Set(label, v)
		}
	}
	return m
}

// UnmarshalJSON 顶层不是对象时视为空响应
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	*r = SearchResponse{}
	f, ok := objectFields(data)
	if !ok {
		return nil
	}

	r.GeminiReview = f.str("gemini_review")
	if tf, ok := objectFields(f["travel_info"]); ok {
		r.TravelInfo = &TravelInfo{
			Distance: tf.str("distance"),
			Duration: tf.str("duration"),
		}
	}
	for _, raw := range f.array("entities") {
		if !isObject(raw) {
			continue
		}
		var e Entity
		if err := json.Unmarshal(raw, &e); err == nil {
			r.Entities = append(r.Entities, e)
		}
	}
	return nil
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	*e = Entity{}
	f, ok := objectFields(data)
	if !ok {
		return nil
	}

	e.Name = f.str("name")
	e.GoogleSentiment = decodeSentiment(f["google_sentiment"])
	e.RedditSentiment = decodeSentiment(f["reddit_sentiment"])
	if wf, ok := objectFields(f["weather"]); ok {
		e.Weather = &Weather{
			Saturday: decodeDay(wf["Saturday"]),
			Sunday:   decodeDay(wf["Sunday"]),
		}
	}
	e.PositiveSummary = f.str("positive_summary")
	e.NegativeSummary = f.str("negative_summary")
	for _, raw := range f.array("reviews") {
		if !isObject(raw) {
			continue
		}
		var rv Review
		if err := json.Unmarshal(raw, &rv); err == nil {
			e.Reviews = append(e.Reviews, rv)
		}
	}
	e.Latitude = f.numberPtr("latitude")
	e.Longitude = f.numberPtr("longitude")
	return nil
}

func decodeDay(raw json.RawMessage) *DayWeather {
	f, ok := objectFields(raw)
	if !ok {
		return nil
	}
	d := &DayWeather{
		Date:        f.str("date"),
		Description: f.str("description"),
	}
	d.Temperature, _ = f.number("temperature")
	return d
}

func (rv *Review) UnmarshalJSON(data []byte) error {
	*rv = Review{}
	f, ok := objectFields(data)
	if !ok {
		return nil
	}

	rv.Source = f.str("source")
	rv.Text = f.str("text")
	rv.Rating = f.numberPtr("rating")
	rv.Sentiment = f.str("sentiment")
	rv.Date = f.str("date")
	rv.User = f.str("user")
	return nil
}
