package repository

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"formforge_backend/internal/model"
	"formforge_backend/internal/util"
)

// MemoryStore 内存实现，供测试与无数据库的本地运行使用。
// 按实例注入，没有进程级单例。
type MemoryStore struct {
	mu        sync.RWMutex
	forms     map[string]*model.Form
	responses map[string]*model.FormResponse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forms:     make(map[string]*model.Form),
		responses: make(map[string]*model.FormResponse),
	}
}

// cloneForm 读写都走深拷贝，避免调用方与存储共享可变状态。
func cloneForm(f *model.Form) *model.Form {
	data, _ := json.Marshal(f)
	var out model.Form
	_ = json.Unmarshal(data, &out)
	out.CreatedAt = f.CreatedAt
	out.UpdatedAt = f.UpdatedAt
	return &out
}

func cloneResponse(r *model.FormResponse) *model.FormResponse {
	data, _ := json.Marshal(r)
	var out model.FormResponse
	_ = json.Unmarshal(data, &out)
	out.SubmittedAt = r.SubmittedAt
	return &out
}

func (s *MemoryStore) Create(form *model.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.ID == "" {
		form.ID = model.GenerateUUID()
	}
	now := time.Now()
	form.CreatedAt = now
	form.UpdatedAt = now
	s.forms[form.ID] = cloneForm(form)
	return nil
}

func (s *MemoryStore) FindByID(id string) (*model.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, ok := s.forms[id]
	if !ok {
		return nil, util.ErrFormNotFound
	}
	return cloneForm(form), nil
}

func (s *MemoryStore) FindByShareURL(shareURL string) (*model.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, form := range s.forms {
		if form.ShareURL != nil && *form.ShareURL == shareURL {
			return cloneForm(form), nil
		}
	}
	return nil, util.ErrFormNotFound
}

func (s *MemoryStore) Update(form *model.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forms[form.ID]; !ok {
		return util.ErrFormNotFound
	}
	form.UpdatedAt = time.Now()
	s.forms[form.ID] = cloneForm(form)
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forms[id]; !ok {
		return util.ErrFormNotFound
	}
	delete(s.forms, id)
	for rid, resp := range s.responses {
		if resp.FormID == id {
			delete(s.responses, rid)
		}
	}
	return nil
}

func (s *MemoryStore) List() ([]model.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	forms := make([]model.Form, 0, len(s.forms))
	for _, form := range s.forms {
		forms = append(forms, *cloneForm(form))
	}
	sort.Slice(forms, func(i, j int) bool {
		return forms[i].CreatedAt.After(forms[j].CreatedAt)
	})
	return forms, nil
}

// Responses 返回答卷侧的存储视图，与表单侧共享同一把锁和级联删除。
func (s *MemoryStore) Responses() *MemoryResponseStore {
	return &MemoryResponseStore{store: s}
}

type MemoryResponseStore struct {
	store *MemoryStore
}

func (s *MemoryResponseStore) Create(resp *model.FormResponse) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if resp.ID == "" {
		resp.ID = model.GenerateUUID()
	}
	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = time.Now()
	}
	s.store.responses[resp.ID] = cloneResponse(resp)
	return nil
}

func (s *MemoryResponseStore) ListByFormID(formID string) ([]model.FormResponse, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	responses := make([]model.FormResponse, 0)
	for _, resp := range s.store.responses {
		if resp.FormID == formID {
			responses = append(responses, *cloneResponse(resp))
		}
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].SubmittedAt.Before(responses[j].SubmittedAt)
	})
	return responses, nil
}
