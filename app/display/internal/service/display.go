package service

import (
	"bytes"
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/place_radar/app/display/internal/usecase"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/model"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/view"
)

const (
	OperationDisplaySearch  = "/place_radar.display.v1.Display/Search"
	OperationDisplayPreview = "/place_radar.display.v1.Display/Preview"

	contentTypeHTML = "text/html; charset=utf-8"
)

type DisplayService struct {
	uc  *usecase.SearchUseCase
	log *log.Helper
}

func NewDisplayService(uc *usecase.SearchUseCase, logger log.Logger) *DisplayService {
	return &DisplayService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// Index GET / 返回空白搜索页
func (s *DisplayService) Index(ctx http.Context) error {
	page, err := s.uc.Index()
	if err != nil {
		return err
	}
	return s.writePage(ctx, page)
}

// Search POST / 表单字段 query 原样提交给后端
func (s *DisplayService) Search(ctx http.Context) error {
	if err := ctx.Request().ParseForm(); err != nil {
		return errors.BadRequest("INVALID_FORM", err.Error())
	}
	query := ctx.Request().Form.Get("query")
	http.SetOperation(ctx, OperationDisplaySearch)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.uc.Search(ctx, req.(string))
	})
	out, err := h(ctx, query)
	if err != nil {
		return err
	}
	return s.writePage(ctx, out.(*view.Page))
}

// Preview POST /render 请求体为后端响应 JSON，直接渲染
func (s *DisplayService) Preview(ctx http.Context) error {
	var in model.SearchResponse
	if err := ctx.Bind(&in); err != nil {
		return errors.BadRequest("INVALID_RESPONSE", err.Error())
	}
	http.SetOperation(ctx, OperationDisplayPreview)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.uc.Preview(req.(*model.SearchResponse))
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return s.writePage(ctx, out.(*view.Page))
}

func (s *DisplayService) writePage(ctx http.Context, page *view.Page) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		s.log.Errorf("render page failed: %v", err)
		return errors.InternalServer("RENDER_FAILED", "render page failed")
	}
	return ctx.Blob(200, contentTypeHTML, buf.Bytes())
}
