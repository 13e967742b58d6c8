package repository

import (
	"formforge_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(resp *model.FormResponse) error {
	return r.DB.Create(resp).Error
}

func (r *ResponseRepository) ListByFormID(formID string) ([]model.FormResponse, error) {
	var responses []model.FormResponse
	err := r.DB.Where("form_id = ?", formID).Order("submitted_at asc").Find(&responses).Error
	return responses, err
}
