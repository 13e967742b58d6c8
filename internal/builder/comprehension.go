package builder

import (
	"formforge_backend/internal/model"
	"strings"
)

// ComprehensionEditor 阅读理解题编辑器。
type ComprehensionEditor struct {
	q *model.ComprehensionQuestion
}

func (e *ComprehensionEditor) SetPassage(text string) {
	e.q.Passage = text
}

func (e *ComprehensionEditor) SetImage(url string) {
	e.q.Image = url
}

// AddMCQ 追加一道单选子题，默认两个空选项且第一个为正确答案，
// 保证「恰好一个正确选项、至少两个选项」的不变量从创建起就成立。
func (e *ComprehensionEditor) AddMCQ(question string) (string, bool) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", false
	}
	mcq := model.MCQ{
		ID:       newID("mcq"),
		Question: question,
		Options: []model.MCQOption{
			{ID: newID("option"), Text: "", IsCorrect: true},
			{ID: newID("option"), Text: "", IsCorrect: false},
		},
	}
	e.q.Questions = append(e.q.Questions, mcq)
	return mcq.ID, true
}

func (e *ComprehensionEditor) UpdateMCQ(mcqID, question string) bool {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID == mcqID {
			e.q.Questions[i].Question = question
			return true
		}
	}
	return false
}

func (e *ComprehensionEditor) DeleteMCQ(mcqID string) bool {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID == mcqID {
			e.q.Questions = append(e.q.Questions[:i], e.q.Questions[i+1:]...)
			return true
		}
	}
	return false
}

func (e *ComprehensionEditor) AddOption(mcqID string) (string, bool) {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID == mcqID {
			opt := model.MCQOption{ID: newID("option")}
			e.q.Questions[i].Options = append(e.q.Questions[i].Options, opt)
			return opt.ID, true
		}
	}
	return "", false
}

func (e *ComprehensionEditor) UpdateOptionText(mcqID, optionID, text string) bool {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID != mcqID {
			continue
		}
		for j := range e.q.Questions[i].Options {
			if e.q.Questions[i].Options[j].ID == optionID {
				e.q.Questions[i].Options[j].Text = text
				return true
			}
		}
	}
	return false
}

// DeleteOption 删除选项；每道子题至少保留 2 个选项，低于下限的删除被拒绝。
func (e *ComprehensionEditor) DeleteOption(mcqID, optionID string) bool {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID != mcqID {
			continue
		}
		if len(e.q.Questions[i].Options) <= 2 {
			return false
		}
		for j := range e.q.Questions[i].Options {
			if e.q.Questions[i].Options[j].ID == optionID {
				wasCorrect := e.q.Questions[i].Options[j].IsCorrect
				e.q.Questions[i].Options = append(e.q.Questions[i].Options[:j], e.q.Questions[i].Options[j+1:]...)
				// 删掉的是正确选项时，把正确标记转移到第一个选项，维持不变量
				if wasCorrect {
					e.q.Questions[i].Options[0].IsCorrect = true
				}
				return true
			}
		}
	}
	return false
}

// SetCorrect 单选式设置正确答案：目标置真，其余兄弟选项全部清掉。
func (e *ComprehensionEditor) SetCorrect(mcqID, optionID string) bool {
	for i := range e.q.Questions {
		if e.q.Questions[i].ID != mcqID {
			continue
		}
		if _, ok := e.q.Questions[i].Option(optionID); !ok {
			return false
		}
		for j := range e.q.Questions[i].Options {
			e.q.Questions[i].Options[j].IsCorrect = e.q.Questions[i].Options[j].ID == optionID
		}
		return true
	}
	return false
}

// Question 返回编辑中的题目值。
func (e *ComprehensionEditor) Question() *model.ComprehensionQuestion {
	return e.q
}
