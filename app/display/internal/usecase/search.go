package usecase

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/render"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/submitter"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/view"
)

// SearchUseCase 查询并生成结果页
type SearchUseCase struct {
	searcher search.Searcher
	limiter  *rate.Limiter
	renderer *render.Renderer
	log      *log.Helper
}

// NewSearchUseCase 创建查询业务逻辑实例，limiter 为 nil 时不限流
func NewSearchUseCase(searcher search.Searcher, limiter *rate.Limiter, logger log.Logger) *SearchUseCase {
	return &SearchUseCase{
		searcher: searcher,
		limiter:  limiter,
		renderer: render.NewRenderer(),
		log:      log.NewHelper(logger),
	}
}

// Index 空白页面
func (uc *SearchUseCase) Index() (*view.Page, error) {
	return view.NewPage()
}

// Search 每次请求使用独立的页面。
// 后端失败时错误信息已写入结果区，页面照常返回。
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*view.Page, error) {
	page, err := view.NewPage()
	if err != nil {
		return nil, err
	}
	page.SetQuery(query)

	sub := submitter.New(uc.searcher, page.Results(),
		submitter.WithRenderer(uc.renderer),
		submitter.WithLimiter(uc.limiter),
	)
	if err := sub.Submit(ctx, query); err != nil && !errors.Is(err, submitter.ErrStale) {
		uc.log.WithContext(ctx).Warnf("search %q failed: %v", query, err)
	}
	return page, nil
}

// Preview 直接渲染调用方给出的响应，不访问后端
func (uc *SearchUseCase) Preview(resp *model.SearchResponse) (*view.Page, error) {
	page, err := view.NewPage()
	if err != nil {
		return nil, err
	}
	if err := uc.renderer.Render(resp, page.Results()); err != nil {
		return nil, err
	}
	return page, nil
}
