package builder

import (
	"testing"

	"formforge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategorizeEditor(t *testing.T) (*Draft, *CategorizeEditor) {
	t.Helper()
	d := NewDraft()
	id, err := d.AddQuestion(model.QuestionCategorize)
	require.NoError(t, err)
	ed, ok := d.Categorize(id)
	require.True(t, ok)
	return d, ed
}

func TestAddItemDefaultsToFirstCategory(t *testing.T) {
	_, ed := newCategorizeEditor(t)

	// 没有分类时 correctCategory 留空
	id1, ok := ed.AddItem("鲸鱼")
	require.True(t, ok)
	item, _ := ed.Question().Item(id1)
	assert.Empty(t, item.CorrectCategory)

	catA, _ := ed.AddCategory("A")
	ed.AddCategory("B")

	id2, _ := ed.AddItem("麻雀")
	item, _ = ed.Question().Item(id2)
	assert.Equal(t, catA, item.CorrectCategory)

	_, ok = ed.AddItem("   ")
	assert.False(t, ok)
}

func TestSetItemCategoryRequiresExistingCategory(t *testing.T) {
	_, ed := newCategorizeEditor(t)
	cat, _ := ed.AddCategory("A")
	item, _ := ed.AddItem("x")

	assert.False(t, ed.SetItemCategory(item, "missing"))
	assert.True(t, ed.SetItemCategory(item, cat))
}

func TestDeleteCategoryClearsReferences(t *testing.T) {
	_, ed := newCategorizeEditor(t)
	catA, _ := ed.AddCategory("A")
	catB, _ := ed.AddCategory("B")

	i1, _ := ed.AddItem("one")
	i2, _ := ed.AddItem("two")
	ed.SetItemCategory(i2, catB)

	require.True(t, ed.DeleteCategory(catA))

	// 引用被删分类的条目清空，其余不动
	item1, _ := ed.Question().Item(i1)
	assert.Empty(t, item1.CorrectCategory)
	item2, _ := ed.Question().Item(i2)
	assert.Equal(t, catB, item2.CorrectCategory)

	assert.False(t, ed.DeleteCategory(catA))
}

func TestMoveItemReorders(t *testing.T) {
	_, ed := newCategorizeEditor(t)
	a, _ := ed.AddItem("a")
	b, _ := ed.AddItem("b")
	c, _ := ed.AddItem("c")

	require.True(t, ed.MoveItem(c, a))

	q := ed.Question()
	assert.Equal(t, []string{c, a, b}, []string{q.Items[0].ID, q.Items[1].ID, q.Items[2].ID})

	assert.False(t, ed.MoveItem("missing", a))
}

func TestEditedCategorizePassesValidation(t *testing.T) {
	d, ed := newCategorizeEditor(t)
	d.SetTitle("t")

	cat, _ := ed.AddCategory("A")
	item, _ := ed.AddItem("x")
	ed.SetItemCategory(item, cat)
	ed.DeleteCategory(cat)

	assert.NoError(t, d.Validate())
}
