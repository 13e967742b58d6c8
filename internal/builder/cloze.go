package builder

import (
	"formforge_backend/internal/model"
	"strings"
)

// Selection 文本面板上的待定选区。纯瞬态，不持久化。
type Selection struct {
	Start int
	End   int
	Text  string
}

// ClozeEditor 填空题编辑器。
type ClozeEditor struct {
	q       *model.ClozeQuestion
	pending *Selection
}

// SetText 替换正文。已有填空位的偏移按各自 word 在新正文中的出现位置
// 重新推导（从左到右取首个未被占用的出现位置）；word 已不存在的填空位被丢弃。
// 任何正文编辑都会作废待定选区。
func (e *ClozeEditor) SetText(text string) {
	e.pending = nil

	kept := make([]model.Blank, 0, len(e.q.Blanks))
	searchFrom := make(map[string]int)
	for _, b := range e.q.Blanks {
		from := searchFrom[b.Word]
		idx := strings.Index(text[from:], b.Word)
		if idx < 0 {
			continue
		}
		b.Position = from + idx
		searchFrom[b.Word] = b.Position + len(b.Word)
		kept = append(kept, b)
	}
	e.q.Text = text
	e.q.Blanks = kept
}

func (e *ClozeEditor) SetImage(url string) {
	e.q.Image = url
}

// Select 记录当前选区；越界或空选区返回 false。
func (e *ClozeEditor) Select(start, end int) bool {
	if start < 0 || end > len(e.q.Text) || start >= end {
		return false
	}
	text := strings.TrimSpace(e.q.Text[start:end])
	if text == "" {
		return false
	}
	// 修剪掉选区两端的空白后重新对齐偏移
	offset := strings.Index(e.q.Text[start:end], text)
	e.pending = &Selection{
		Start: start + offset,
		End:   start + offset + len(text),
		Text:  text,
	}
	return true
}

// PendingSelection 返回当前待定选区。
func (e *ClozeEditor) PendingSelection() *Selection {
	return e.pending
}

// CreateBlank 把待定选区转换为填空位并清除选区。
func (e *ClozeEditor) CreateBlank() (string, bool) {
	if e.pending == nil {
		return "", false
	}
	blank := model.Blank{
		ID:       newID("blank"),
		Word:     e.pending.Text,
		Position: e.pending.Start,
	}
	e.q.Blanks = append(e.q.Blanks, blank)
	e.pending = nil
	return blank.ID, true
}

// DeleteBlank 仅从列表移除填空位，正文不动。
func (e *ClozeEditor) DeleteBlank(blankID string) bool {
	for i := range e.q.Blanks {
		if e.q.Blanks[i].ID == blankID {
			e.q.Blanks = append(e.q.Blanks[:i], e.q.Blanks[i+1:]...)
			return true
		}
	}
	return false
}

// MoveBlank 仅调整列表（展示）顺序，position 字段不变。
func (e *ClozeEditor) MoveBlank(draggedID, targetID string) bool {
	ids := make([]string, len(e.q.Blanks))
	byID := make(map[string]model.Blank, len(e.q.Blanks))
	for i, b := range e.q.Blanks {
		ids[i] = b.ID
		byID[b.ID] = b
	}
	moved := moveByID(ids, draggedID, targetID)
	if moved == nil {
		return false
	}
	out := make([]model.Blank, 0, len(moved))
	for _, id := range moved {
		out = append(out, byID[id])
	}
	e.q.Blanks = out
	return true
}

// Question 返回编辑中的题目值。
func (e *ClozeEditor) Question() *model.ClozeQuestion {
	return e.q
}
