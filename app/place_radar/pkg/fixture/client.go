package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search"
)

// Client 回放本地保存的 /search 响应，用于离线调试页面
type Client struct {
	path string
}

// NewClient 创建一个新的回放客户端
func NewClient(path string) *Client {
	return &Client{path: path}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// Search 忽略查询内容，每次都重新读取文件
func (c *Client) Search(ctx context.Context, req *search.Request) (*model.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read fixture failed: %w", err)
	}

	var resp model.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode fixture failed: %w", err)
	}

	return &resp, nil
}
