// Package builder 实现表单草稿与三种题型的编辑器。
// 草稿是纯内存值，编辑期间不做任何持久化；保存由调用方通过
// FormService 完成。两个会话同时编辑同一表单时后写覆盖先写。
package builder

import (
	"fmt"
	"formforge_backend/internal/model"

	"github.com/google/uuid"
)

func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}

// Draft 一次编辑会话持有的表单草稿。
type Draft struct {
	form *model.Form
}

// NewDraft 创建空草稿：默认标题，零题目。
func NewDraft() *Draft {
	return &Draft{form: &model.Form{
		Title:     "Untitled Form",
		Questions: model.QuestionList{},
	}}
}

// FromForm 从既有表单快照创建草稿。
func FromForm(form *model.Form) (*Draft, error) {
	clone, err := form.Clone()
	if err != nil {
		return nil, err
	}
	return &Draft{form: clone}, nil
}

func (d *Draft) SetTitle(title string)      { d.form.Title = title }
func (d *Draft) SetDescription(desc string) { d.form.Description = desc }
func (d *Draft) SetHeaderImage(url string)  { d.form.HeaderImage = url }

// AddQuestion 追加一道指定题型的空题目，返回其 id。
func (d *Draft) AddQuestion(kind model.QuestionType) (string, error) {
	id := newID("question")
	var q model.Question
	switch kind {
	case model.QuestionCategorize:
		q = &model.CategorizeQuestion{
			ID:         id,
			Type:       model.QuestionCategorize,
			Items:      []model.CategorizeItem{},
			Categories: []model.Category{},
		}
	case model.QuestionCloze:
		q = &model.ClozeQuestion{
			ID:     id,
			Type:   model.QuestionCloze,
			Blanks: []model.Blank{},
		}
	case model.QuestionComprehension:
		q = &model.ComprehensionQuestion{
			ID:        id,
			Type:      model.QuestionComprehension,
			Questions: []model.MCQ{},
		}
	default:
		return "", fmt.Errorf("unknown question type %q", kind)
	}
	d.form.Questions = append(d.form.Questions, q)
	return id, nil
}

// RemoveQuestion 删除题目。
func (d *Draft) RemoveQuestion(id string) bool {
	for i, q := range d.form.Questions {
		if q.QuestionID() == id {
			d.form.Questions = append(d.form.Questions[:i], d.form.Questions[i+1:]...)
			return true
		}
	}
	return false
}

// MoveQuestion 把被拖拽的题目移动到目标题目的位置，其余题目保持稳定顺序。
func (d *Draft) MoveQuestion(draggedID, targetID string) bool {
	moved := moveByID(questionIDs(d.form.Questions), draggedID, targetID)
	if moved == nil {
		return false
	}
	byID := make(map[string]model.Question, len(d.form.Questions))
	for _, q := range d.form.Questions {
		byID[q.QuestionID()] = q
	}
	out := make(model.QuestionList, 0, len(moved))
	for _, id := range moved {
		out = append(out, byID[id])
	}
	d.form.Questions = out
	return true
}

// Categorize 返回指定分类题的编辑器。
func (d *Draft) Categorize(id string) (*CategorizeEditor, bool) {
	q, ok := d.form.Question(id)
	if !ok {
		return nil, false
	}
	cq, ok := q.(*model.CategorizeQuestion)
	if !ok {
		return nil, false
	}
	return &CategorizeEditor{q: cq}, true
}

// Cloze 返回指定填空题的编辑器。
func (d *Draft) Cloze(id string) (*ClozeEditor, bool) {
	q, ok := d.form.Question(id)
	if !ok {
		return nil, false
	}
	cq, ok := q.(*model.ClozeQuestion)
	if !ok {
		return nil, false
	}
	return &ClozeEditor{q: cq}, true
}

// Comprehension 返回指定阅读理解题的编辑器。
func (d *Draft) Comprehension(id string) (*ComprehensionEditor, bool) {
	q, ok := d.form.Question(id)
	if !ok {
		return nil, false
	}
	cq, ok := q.(*model.ComprehensionQuestion)
	if !ok {
		return nil, false
	}
	return &ComprehensionEditor{q: cq}, true
}

// Form 物化当前草稿，用于保存。
func (d *Draft) Form() *model.Form {
	return d.form
}

// Validate 对草稿做与服务端一致的校验。
func (d *Draft) Validate() error {
	return d.form.Validate()
}

func questionIDs(qs model.QuestionList) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.QuestionID())
	}
	return ids
}

// moveByID 把 draggedID 移到 targetID 当前所在的下标，等价于拖拽排序。
// 任一 id 不存在时返回 nil。
func moveByID(ids []string, draggedID, targetID string) []string {
	from, to := -1, -1
	for i, id := range ids {
		if id == draggedID {
			from = i
		}
		if id == targetID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)
	result := make([]string, 0, len(ids))
	result = append(result, out[:to]...)
	result = append(result, draggedID)
	result = append(result, out[to:]...)
	return result
}
