package model

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"
	QuestionCloze         QuestionType = "cloze"
	QuestionComprehension QuestionType = "comprehension"
)

// Question 题目的判别联合，按 type 标签区分三种题型。
// 所有消费方（校验、编辑器、答题）都必须对三种题型做穷举分派。
type Question interface {
	QuestionID() string
	QuestionType() QuestionType
	validate(path string, errs *ValidationErrors)
}

// swagger:model CategorizeQuestion
type CategorizeQuestion struct {
	ID         string           `json:"id"`
	Type       QuestionType     `json:"type"` // 恒为 categorize
	Question   string           `json:"question"`
	Image      string           `json:"image,omitempty"`
	Items      []CategorizeItem `json:"items"`
	Categories []Category       `json:"categories"`
}

type CategorizeItem struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	CorrectCategory string `json:"correctCategory"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (q *CategorizeQuestion) QuestionID() string         { return q.ID }
func (q *CategorizeQuestion) QuestionType() QuestionType { return QuestionCategorize }

func (q *CategorizeQuestion) validate(path string, errs *ValidationErrors) {
	catSet := make(map[string]bool, len(q.Categories))
	for i, cat := range q.Categories {
		if cat.ID == "" {
			errs.Add(fmt.Sprintf("%s.categories[%d].id", path, i), "id is required")
		}
		catSet[cat.ID] = true
	}
	for i, item := range q.Items {
		if item.ID == "" {
			errs.Add(fmt.Sprintf("%s.items[%d].id", path, i), "id is required")
		}
		// correctCategory 允许为空（未指定），但不允许悬空引用
		if item.CorrectCategory != "" && !catSet[item.CorrectCategory] {
			errs.Add(fmt.Sprintf("%s.items[%d].correctCategory", path, i),
				fmt.Sprintf("unknown category %q", item.CorrectCategory))
		}
	}
}

// Category 返回指定 id 的分类。
func (q *CategorizeQuestion) Category(id string) (Category, bool) {
	for _, cat := range q.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Item 返回指定 id 的条目。
func (q *CategorizeQuestion) Item(id string) (CategorizeItem, bool) {
	for _, item := range q.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CategorizeItem{}, false
}

// swagger:model ClozeQuestion
type ClozeQuestion struct {
	ID     string       `json:"id"`
	Type   QuestionType `json:"type"` // 恒为 cloze
	Text   string       `json:"text"`
	Image  string       `json:"image,omitempty"`
	Blanks []Blank      `json:"blanks"`
}

// Blank 填空位：word 是从正文抠掉的原文，position 是 word 在正文中的字节偏移。
type Blank struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Position int    `json:"position"`
}

func (q *ClozeQuestion) QuestionID() string         { return q.ID }
func (q *ClozeQuestion) QuestionType() QuestionType { return QuestionCloze }

func (q *ClozeQuestion) validate(path string, errs *ValidationErrors) {
	for i, b := range q.Blanks {
		if b.ID == "" {
			errs.Add(fmt.Sprintf("%s.blanks[%d].id", path, i), "id is required")
		}
		if b.Word == "" {
			errs.Add(fmt.Sprintf("%s.blanks[%d].word", path, i), "word is required")
			continue
		}
		end := b.Position + len(b.Word)
		if b.Position < 0 || end > len(q.Text) || q.Text[b.Position:end] != b.Word {
			errs.Add(fmt.Sprintf("%s.blanks[%d].position", path, i),
				fmt.Sprintf("text at position %d does not match word %q", b.Position, b.Word))
		}
	}
}

// Blank 返回指定 id 的填空位。
func (q *ClozeQuestion) Blank(id string) (Blank, bool) {
	for _, b := range q.Blanks {
		if b.ID == id {
			return b, true
		}
	}
	return Blank{}, false
}

// swagger:model ComprehensionQuestion
type ComprehensionQuestion struct {
	ID        string       `json:"id"`
	Type      QuestionType `json:"type"` // 恒为 comprehension
	Passage   string       `json:"passage"`
	Image     string       `json:"image,omitempty"`
	Questions []MCQ        `json:"questions"`
}

type MCQ struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Options  []MCQOption `json:"options"`
}

type MCQOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

func (q *ComprehensionQuestion) QuestionID() string         { return q.ID }
func (q *ComprehensionQuestion) QuestionType() QuestionType { return QuestionComprehension }

func (q *ComprehensionQuestion) validate(path string, errs *ValidationErrors) {
	for i, mcq := range q.Questions {
		mcqPath := fmt.Sprintf("%s.questions[%d]", path, i)
		if mcq.ID == "" {
			errs.Add(mcqPath+".id", "id is required")
		}
		if len(mcq.Options) < 2 {
			errs.Add(mcqPath+".options", "at least 2 options are required")
		}
		correct := 0
		for _, opt := range mcq.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			errs.Add(mcqPath+".options",
				fmt.Sprintf("exactly one correct option is required, got %d", correct))
		}
	}
}

// MCQ 返回指定 id 的子题。
func (q *ComprehensionQuestion) MCQ(id string) (MCQ, bool) {
	for _, mcq := range q.Questions {
		if mcq.ID == id {
			return mcq, true
		}
	}
	return MCQ{}, false
}

// Option 返回该子题指定 id 的选项。
func (m *MCQ) Option(id string) (MCQOption, bool) {
	for _, opt := range m.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return MCQOption{}, false
}

// CorrectOption 返回该子题的正确选项。
func (m *MCQ) CorrectOption() (MCQOption, bool) {
	for _, opt := range m.Options {
		if opt.IsCorrect {
			return opt, true
		}
	}
	return MCQOption{}, false
}

// questionProbe 仅用于探测 type 标签。
type questionProbe struct {
	Type QuestionType `json:"type"`
}

// UnmarshalQuestion 按 type 标签反序列化为具体题型。
func UnmarshalQuestion(data []byte) (Question, error) {
	var probe questionProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case QuestionCategorize:
		var q CategorizeQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, err
		}
		q.Type = QuestionCategorize
		return &q, nil
	case QuestionCloze:
		var q ClozeQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, err
		}
		q.Type = QuestionCloze
		return &q, nil
	case QuestionComprehension:
		var q ComprehensionQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, err
		}
		q.Type = QuestionComprehension
		return &q, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", probe.Type)
	}
}
