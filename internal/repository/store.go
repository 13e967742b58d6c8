package repository

import (
	"formforge_backend/internal/model"
)

// FormStore 表单存储。每个操作对单条记录原子，不要求跨记录事务。
type FormStore interface {
	Create(form *model.Form) error
	FindByID(id string) (*model.Form, error)
	FindByShareURL(shareURL string) (*model.Form, error)
	Update(form *model.Form) error
	// Delete 删除表单并级联删除其全部答卷
	Delete(id string) error
	List() ([]model.Form, error)
}

// ResponseStore 答卷存储。答卷只增不改。
type ResponseStore interface {
	Create(resp *model.FormResponse) error
	ListByFormID(formID string) ([]model.FormResponse, error)
}
