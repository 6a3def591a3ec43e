package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search"
)

const searchPath = "/search"

// HTTPError 后端返回非 2xx 状态码
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Client 后端搜索 API 客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的后端客户端，timeout 单位为秒，0 表示默认 30 秒
func NewClient(baseURL string, timeout int) *Client {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: t,
		},
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// Search 执行一次 POST /search
func (c *Client) Search(ctx context.Context, req *search.Request) (*model.SearchResponse, error) {
	payload, err := json.Marshal(model.SearchRequest{Query: req.Query})
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	// 非 2xx 直接失败，不读取响应体
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: res.StatusCode}
	}

	var resp model.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	return &resp, nil
}
