package builder

import (
	"formforge_backend/internal/model"
	"strings"
)

// CategorizeEditor 分类题编辑器，直接在草稿中的题目值上操作。
type CategorizeEditor struct {
	q *model.CategorizeQuestion
}

func (e *CategorizeEditor) SetQuestion(text string) {
	e.q.Question = text
}

func (e *CategorizeEditor) SetImage(url string) {
	e.q.Image = url
}

// AddItem 追加条目；正确分类默认取第一个分类，没有分类则留空。
func (e *CategorizeEditor) AddItem(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	correct := ""
	if len(e.q.Categories) > 0 {
		correct = e.q.Categories[0].ID
	}
	item := model.CategorizeItem{
		ID:              newID("item"),
		Text:            text,
		CorrectCategory: correct,
	}
	e.q.Items = append(e.q.Items, item)
	return item.ID, true
}

func (e *CategorizeEditor) UpdateItemText(itemID, text string) bool {
	for i := range e.q.Items {
		if e.q.Items[i].ID == itemID {
			e.q.Items[i].Text = text
			return true
		}
	}
	return false
}

// SetItemCategory 指定条目的正确分类；分类必须存在。
func (e *CategorizeEditor) SetItemCategory(itemID, categoryID string) bool {
	if _, ok := e.q.Category(categoryID); !ok {
		return false
	}
	for i := range e.q.Items {
		if e.q.Items[i].ID == itemID {
			e.q.Items[i].CorrectCategory = categoryID
			return true
		}
	}
	return false
}

func (e *CategorizeEditor) DeleteItem(itemID string) bool {
	for i := range e.q.Items {
		if e.q.Items[i].ID == itemID {
			e.q.Items = append(e.q.Items[:i], e.q.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (e *CategorizeEditor) AddCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	cat := model.Category{ID: newID("category"), Name: name}
	e.q.Categories = append(e.q.Categories, cat)
	return cat.ID, true
}

func (e *CategorizeEditor) UpdateCategory(categoryID, name string) bool {
	for i := range e.q.Categories {
		if e.q.Categories[i].ID == categoryID {
			e.q.Categories[i].Name = name
			return true
		}
	}
	return false
}

// DeleteCategory 删除分类，并清空所有引用它的条目的 correctCategory，
// 不留悬空引用。
func (e *CategorizeEditor) DeleteCategory(categoryID string) bool {
	found := false
	for i := range e.q.Categories {
		if e.q.Categories[i].ID == categoryID {
			e.q.Categories = append(e.q.Categories[:i], e.q.Categories[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := range e.q.Items {
		if e.q.Items[i].CorrectCategory == categoryID {
			e.q.Items[i].CorrectCategory = ""
		}
	}
	return true
}

// MoveItem 把被拖拽的条目移到目标条目的位置，其余条目顺序稳定。
func (e *CategorizeEditor) MoveItem(draggedID, targetID string) bool {
	ids := make([]string, len(e.q.Items))
	byID := make(map[string]model.CategorizeItem, len(e.q.Items))
	for i, item := range e.q.Items {
		ids[i] = item.ID
		byID[item.ID] = item
	}
	moved := moveByID(ids, draggedID, targetID)
	if moved == nil {
		return false
	}
	out := make([]model.CategorizeItem, 0, len(moved))
	for _, id := range moved {
		out = append(out, byID[id])
	}
	e.q.Items = out
	return true
}

// MoveCategory 分类排序，语义同 MoveItem。
func (e *CategorizeEditor) MoveCategory(draggedID, targetID string) bool {
	ids := make([]string, len(e.q.Categories))
	byID := make(map[string]model.Category, len(e.q.Categories))
	for i, cat := range e.q.Categories {
		ids[i] = cat.ID
		byID[cat.ID] = cat
	}
	moved := moveByID(ids, draggedID, targetID)
	if moved == nil {
		return false
	}
	out := make([]model.Category, 0, len(moved))
	for _, id := range moved {
		out = append(out, byID[id])
	}
	e.q.Categories = out
	return true
}

// Question 返回编辑中的题目值。
func (e *CategorizeEditor) Question() *model.CategorizeQuestion {
	return e.q
}
