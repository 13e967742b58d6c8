package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormResponse 一份提交的答卷。创建后不可变，没有更新/删除路径，
// 表单被删除时级联删除。
// swagger:model FormResponse
type FormResponse struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FormID      string    `gorm:"index;type:varchar(36);not null" json:"formId"`
	Answers     AnswerMap `gorm:"type:json" json:"answers"`
	UserEmail   string    `gorm:"size:255" json:"userEmail,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (FormResponse) TableName() string {
	return "responses"
}

func (r *FormResponse) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now()
	}
	return
}

// AnswerMap 题目 id 到答案载荷的映射；载荷形状由题型决定，
// 延迟到消费方按题型解码。
type AnswerMap map[string]json.RawMessage

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]json.RawMessage(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for AnswerMap")
	}
	return json.Unmarshal(data, m)
}
