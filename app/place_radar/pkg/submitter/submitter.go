package submitter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/logger"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/render"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search"
)

// ErrorPrefix 失败时结果视图中的提示前缀
const ErrorPrefix = "An error occurred: "

// ErrStale 响应到达时已有更新的提交，结果被丢弃
var ErrStale = errors.New("stale search result discarded")

// Submitter 把查询提交给后端，并把结果渲染到构造时传入的容器
type Submitter struct {
	searcher search.Searcher
	renderer *render.Renderer
	target   *html.Node
	limiter  *rate.Limiter

	seq atomic.Uint64
	mu  sync.Mutex // 保护 target
}

// Option 提交器选项
type Option func(*Submitter)

// WithRenderer 替换默认渲染器
func WithRenderer(r *render.Renderer) Option {
	return func(s *Submitter) { s.renderer = r }
}

// WithLimiter 对发往后端的请求限流，nil 表示不限流
func WithLimiter(l *rate.Limiter) Option {
	return func(s *Submitter) { s.limiter = l }
}

// New 创建提交器
func New(searcher search.Searcher, target *html.Node, opts ...Option) *Submitter {
	s := &Submitter{
		searcher: searcher,
		target:   target,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = render.NewRenderer()
	}
	return s
}

// NewLimiter Limit 为 RPM/60，Burst 为 QPS；RPM 不大于 0 时返回 nil
func NewLimiter(qps, rpm int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	if qps <= 0 {
		qps = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps)
}

// Submit 发起一次查询。query 原样发送，不做 trim 或判空。
// 只有最新一次提交的结果会写入视图，更早的结果返回 ErrStale。
// 失败时视图只保留 ErrorPrefix + 错误信息，返回值为原始错误。
func (s *Submitter) Submit(ctx context.Context, query string) error {
	seq := s.seq.Add(1)
	log := logger.Log.WithFields(logrus.Fields{
		"seq":      seq,
		"trace_id": uuid.NewString(),
	})
	log.Debugf("submitting query: %q", query)

	resp, err := s.search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if latest := s.seq.Load(); seq != latest {
		log.Warnf("discarding result, newer submission %d exists", latest)
		return ErrStale
	}

	if err == nil {
		err = s.renderer.Render(resp, s.target)
	}
	if err != nil {
		log.Errorf("search failed: %v", err)
		render.ReplaceText(s.target, ErrorPrefix+err.Error())
		return err
	}
	return nil
}

func (s *Submitter) search(ctx context.Context, query string) (*model.SearchResponse, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return s.searcher.Search(ctx, &search.Request{Query: query})
}
