package search

import (
	"context"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
)

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*model.SearchResponse, error)
}

// Request 通用搜索请求，Query 原样发送，不做裁剪或判空
type Request struct {
	Query string
}
