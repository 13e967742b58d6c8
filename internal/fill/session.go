// Package fill 实现答题会话：在已发布的表单上逐题作答，
// 最终装配成可提交的答案集合。会话是纯内存状态，不触碰存储。
package fill

import (
	"encoding/json"
	"fmt"

	"formforge_backend/internal/model"
	"formforge_backend/internal/util"
)

// Session 一次答题会话。每道题持有一张对应题型的答题卡。
type Session struct {
	form          *model.Form
	categorize    map[string]*CategorizeSheet
	cloze         map[string]*ClozeSheet
	comprehension map[string]*ComprehensionSheet
	order         []string
}

// NewSession 在已发布的表单上开启答题会话；未发布的表单视为不存在。
func NewSession(form *model.Form) (*Session, error) {
	if !form.IsPublished {
		return nil, util.ErrFormNotPublished
	}
	s := &Session{
		form:          form,
		categorize:    make(map[string]*CategorizeSheet),
		cloze:         make(map[string]*ClozeSheet),
		comprehension: make(map[string]*ComprehensionSheet),
	}
	for _, q := range form.Questions {
		s.order = append(s.order, q.QuestionID())
		switch v := q.(type) {
		case *model.CategorizeQuestion:
			s.categorize[v.ID] = newCategorizeSheet(v)
		case *model.ClozeQuestion:
			s.cloze[v.ID] = newClozeSheet(v)
		case *model.ComprehensionQuestion:
			s.comprehension[v.ID] = newComprehensionSheet(v)
		}
	}
	return s, nil
}

// Form 返回会话对应的表单。
func (s *Session) Form() *model.Form {
	return s.form
}

// Categorize 返回指定分类题的答题卡。
func (s *Session) Categorize(questionID string) (*CategorizeSheet, bool) {
	sheet, ok := s.categorize[questionID]
	return sheet, ok
}

// Cloze 返回指定填空题的答题卡。
func (s *Session) Cloze(questionID string) (*ClozeSheet, bool) {
	sheet, ok := s.cloze[questionID]
	return sheet, ok
}

// Comprehension 返回指定阅读理解题的答题卡。
func (s *Session) Comprehension(questionID string) (*ComprehensionSheet, bool) {
	sheet, ok := s.comprehension[questionID]
	return sheet, ok
}

// Answers 把所有答题卡装配成提交用的答案集合，键为题目 id。
func (s *Session) Answers() (model.AnswerMap, error) {
	out := make(model.AnswerMap, len(s.order))
	for _, id := range s.order {
		var payload interface{}
		switch {
		case s.categorize[id] != nil:
			payload = s.categorize[id].Buckets()
		case s.cloze[id] != nil:
			payload = s.cloze[id].Filled()
		case s.comprehension[id] != nil:
			payload = s.comprehension[id].Selected()
		default:
			return nil, fmt.Errorf("no sheet for question %q", id)
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		out[id] = raw
	}
	return out, nil
}
