package repository

import (
	"errors"
	"formforge_backend/internal/model"
	"formforge_backend/internal/util"

	"gorm.io/gorm"
)

type FormRepository struct {
	DB *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{DB: db}
}

func (r *FormRepository) Create(form *model.Form) error {
	return r.DB.Create(form).Error
}

func (r *FormRepository) FindByID(id string) (*model.Form, error) {
	var form model.Form
	err := r.DB.First(&form, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) FindByShareURL(shareURL string) (*model.Form, error) {
	var form model.Form
	err := r.DB.First(&form, "share_url = ?", shareURL).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) Update(form *model.Form) error {
	return r.DB.Save(form).Error
}

func (r *FormRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Form{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrFormNotFound
		}
		// 级联删除答卷
		return tx.Delete(&model.FormResponse{}, "form_id = ?", id).Error
	})
}

func (r *FormRepository) List() ([]model.Form, error) {
	var forms []model.Form
	err := r.DB.Order("created_at desc").Find(&forms).Error
	return forms, err
}
