package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// swagger:model Form
type Form struct {
	UUIDBase
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	HeaderImage string       `gorm:"size:512" json:"headerImage"`
	Questions   QuestionList `gorm:"type:json" json:"questions"`
	IsPublished bool         `gorm:"default:false" json:"isPublished"`
	// 首次发布时分配，之后保持不变；未发布过的表单为 NULL
	ShareURL *string `gorm:"size:64;uniqueIndex" json:"shareUrl"`
}

func (Form) TableName() string {
	return "forms"
}

// Validate 校验整张表单，返回字段级错误列表。
func (f *Form) Validate() error {
	errs := &ValidationErrors{}
	if f.Title == "" {
		errs.Add("title", "Title is required")
	}
	for i, q := range f.Questions {
		path := fmt.Sprintf("questions[%d]", i)
		if q.QuestionID() == "" {
			errs.Add(path+".id", "id is required")
		}
		q.validate(path, errs)
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Question 按 id 查找题目。
func (f *Form) Question(id string) (Question, bool) {
	for _, q := range f.Questions {
		if q.QuestionID() == id {
			return q, true
		}
	}
	return nil, false
}

// QuestionList 有序题目序列，整体存为 JSON 列。
type QuestionList []Question

func (l *QuestionList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(QuestionList, 0, len(raws))
	for _, raw := range raws {
		q, err := UnmarshalQuestion(raw)
		if err != nil {
			return err
		}
		out = append(out, q)
	}
	*l = out
	return nil
}

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Question(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for QuestionList")
	}
	return json.Unmarshal(data, l)
}

// Clone 深拷贝表单，编辑器在副本上工作。
func (f *Form) Clone() (*Form, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var out Form
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out.UUIDBase = f.UUIDBase
	out.ShareURL = f.ShareURL
	return &out, nil
}
