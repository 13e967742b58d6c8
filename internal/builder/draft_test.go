package builder

import (
	"testing"

	"formforge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	form := d.Form()

	assert.Equal(t, "Untitled Form", form.Title)
	assert.Empty(t, form.Questions)
	assert.False(t, form.IsPublished)
}

func TestAddQuestionDefaults(t *testing.T) {
	d := NewDraft()

	catID, err := d.AddQuestion(model.QuestionCategorize)
	require.NoError(t, err)
	clozeID, err := d.AddQuestion(model.QuestionCloze)
	require.NoError(t, err)
	compID, err := d.AddQuestion(model.QuestionComprehension)
	require.NoError(t, err)

	require.Len(t, d.Form().Questions, 3)
	assert.Equal(t, catID, d.Form().Questions[0].QuestionID())
	assert.Equal(t, clozeID, d.Form().Questions[1].QuestionID())
	assert.Equal(t, compID, d.Form().Questions[2].QuestionID())

	_, err = d.AddQuestion(model.QuestionType("essay"))
	assert.Error(t, err)
}

func TestRemoveQuestion(t *testing.T) {
	d := NewDraft()
	id, _ := d.AddQuestion(model.QuestionCloze)

	assert.True(t, d.RemoveQuestion(id))
	assert.Empty(t, d.Form().Questions)
	assert.False(t, d.RemoveQuestion(id))
}

func TestMoveQuestion(t *testing.T) {
	d := NewDraft()
	a, _ := d.AddQuestion(model.QuestionCloze)
	b, _ := d.AddQuestion(model.QuestionCloze)
	c, _ := d.AddQuestion(model.QuestionCloze)

	// 把 a 拖到 c 的位置: [a b c] -> [b c a]
	require.True(t, d.MoveQuestion(a, c))
	ids := questionIDs(d.Form().Questions)
	assert.Equal(t, []string{b, c, a}, ids)

	// 再把 a 拖到队首: [b c a] -> [a b c]
	require.True(t, d.MoveQuestion(a, b))
	ids = questionIDs(d.Form().Questions)
	assert.Equal(t, []string{a, b, c}, ids)

	assert.False(t, d.MoveQuestion("missing", a))
}

func TestEditorTypeMismatch(t *testing.T) {
	d := NewDraft()
	clozeID, _ := d.AddQuestion(model.QuestionCloze)

	_, ok := d.Categorize(clozeID)
	assert.False(t, ok)
	_, ok = d.Cloze(clozeID)
	assert.True(t, ok)
	_, ok = d.Cloze("missing")
	assert.False(t, ok)
}

func TestFromFormEditsDoNotLeak(t *testing.T) {
	orig := &model.Form{
		Title: "orig",
		Questions: model.QuestionList{
			&model.ClozeQuestion{ID: "q1", Type: model.QuestionCloze, Text: "abc"},
		},
	}

	d, err := FromForm(orig)
	require.NoError(t, err)

	d.SetTitle("changed")
	ed, _ := d.Cloze("q1")
	ed.SetText("xyz")

	assert.Equal(t, "orig", orig.Title)
	assert.Equal(t, "abc", orig.Questions[0].(*model.ClozeQuestion).Text)
}
