package service

import (
	"context"
	"encoding/json"
	"formforge_backend/internal/config"
	"formforge_backend/internal/model"
	"formforge_backend/internal/repository"
	"formforge_backend/internal/util"
	"formforge_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type FormService struct {
	Store repository.FormStore
	Redis *redis.Client
	Cfg   *config.Config
}

func NewFormService(store repository.FormStore, rdb *redis.Client, cfg *config.Config) *FormService {
	return &FormService{Store: store, Redis: rdb, Cfg: cfg}
}

const shareCacheKeyPrefix = "share:"

// FormReq 创建/部分更新表单的请求体。指针字段缺省表示不修改。
type FormReq struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	HeaderImage *string             `json:"headerImage"`
	Questions   *model.QuestionList `json:"questions"`
	IsPublished *bool               `json:"isPublished"`
}

func (s *FormService) CreateForm(req FormReq) (*model.Form, error) {
	form := &model.Form{}
	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.HeaderImage != nil {
		form.HeaderImage = *req.HeaderImage
	}
	if req.Questions != nil {
		form.Questions = *req.Questions
	} else {
		form.Questions = model.QuestionList{}
	}
	if req.IsPublished != nil {
		form.IsPublished = *req.IsPublished
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	// 创建即发布时直接分配分享标识
	if form.IsPublished {
		shareURL := model.GenerateUUID()
		form.ShareURL = &shareURL
	}

	if err := s.Store.Create(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) GetForm(id string) (*model.Form, error) {
	return s.Store.FindByID(id)
}

func (s *FormService) ListForms() ([]model.Form, error) {
	return s.Store.List()
}

func (s *FormService) UpdateForm(id string, req FormReq) (*model.Form, error) {
	form, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.HeaderImage != nil {
		form.HeaderImage = *req.HeaderImage
	}
	if req.Questions != nil {
		form.Questions = *req.Questions
	}
	if req.IsPublished != nil {
		form.IsPublished = *req.IsPublished
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	// 首次发布时分配分享标识；再次发布不轮换
	if form.IsPublished && form.ShareURL == nil {
		shareURL := model.GenerateUUID()
		form.ShareURL = &shareURL
	}

	if err := s.Store.Update(form); err != nil {
		return nil, err
	}

	s.invalidateShareCache(form)
	return form, nil
}

func (s *FormService) DeleteForm(id string) error {
	form, err := s.Store.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(id); err != nil {
		return err
	}

	s.invalidateShareCache(form)
	return nil
}

// GetFormByShareURL 按分享标识取已发布表单。未发布或不存在统一返回
// ErrFormNotFound，避免暴露未发布表单的存在性。
func (s *FormService) GetFormByShareURL(shareURL string) (*model.Form, error) {
	if form := s.shareCacheGet(shareURL); form != nil {
		return form, nil
	}

	form, err := s.Store.FindByShareURL(shareURL)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished {
		return nil, util.ErrFormNotFound
	}

	s.shareCachePut(shareURL, form)
	return form, nil
}

func (s *FormService) shareCacheGet(shareURL string) *model.Form {
	if s.Redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := s.Redis.Get(ctx, shareCacheKeyPrefix+shareURL).Bytes()
	if err != nil {
		return nil
	}
	var form model.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return nil
	}
	return &form
}

func (s *FormService) shareCachePut(shareURL string, form *model.Form) {
	if s.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := json.Marshal(form)
	if err != nil {
		return
	}
	ttl := time.Duration(s.Cfg.Share.CacheTTLMinutes) * time.Minute
	if err := s.Redis.Set(ctx, shareCacheKeyPrefix+shareURL, data, ttl).Err(); err != nil {
		logger.Log.Warn("share cache write failed", zap.Error(err))
	}
}

func (s *FormService) invalidateShareCache(form *model.Form) {
	if s.Redis == nil || form.ShareURL == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.Redis.Del(ctx, shareCacheKeyPrefix+*form.ShareURL).Err(); err != nil {
		logger.Log.Warn("share cache invalidation failed", zap.Error(err))
	}
}
