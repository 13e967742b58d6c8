package fill

import (
	"encoding/json"
	"testing"

	"formforge_backend/internal/model"
	"formforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedForm() *model.Form {
	form := &model.Form{
		Title:       "t",
		IsPublished: true,
		Questions: model.QuestionList{
			&model.CategorizeQuestion{
				ID:   "cat1",
				Type: model.QuestionCategorize,
				Items: []model.CategorizeItem{
					{ID: "i1", Text: "鲸鱼", CorrectCategory: "c1"},
					{ID: "i2", Text: "麻雀", CorrectCategory: "c2"},
				},
				Categories: []model.Category{
					{ID: "c1", Name: "哺乳动物"},
					{ID: "c2", Name: "鸟类"},
				},
			},
			&model.ClozeQuestion{
				ID:   "cloze1",
				Type: model.QuestionCloze,
				Text: "The cat sat on the mat",
				Blanks: []model.Blank{
					{ID: "b1", Word: "cat", Position: 4},
					{ID: "b2", Word: "mat", Position: 19},
				},
			},
			&model.ComprehensionQuestion{
				ID:      "comp1",
				Type:    model.QuestionComprehension,
				Passage: "p",
				Questions: []model.MCQ{
					{ID: "m1", Question: "?", Options: []model.MCQOption{
						{ID: "o1", Text: "a", IsCorrect: true},
						{ID: "o2", Text: "b", IsCorrect: false},
					}},
				},
			},
		},
	}
	form.ID = "f1"
	return form
}

func TestNewSessionRejectsUnpublished(t *testing.T) {
	form := publishedForm()
	form.IsPublished = false

	_, err := NewSession(form)
	assert.ErrorIs(t, err, util.ErrFormNotPublished)
}

func TestCategorizeBucketsStartUncategorized(t *testing.T) {
	s, err := NewSession(publishedForm())
	require.NoError(t, err)

	sheet, ok := s.Categorize("cat1")
	require.True(t, ok)

	uncat, ok := sheet.Bucket(BucketUncategorized)
	require.True(t, ok)
	assert.Equal(t, []string{"i1", "i2"}, uncat)

	c1, ok := sheet.Bucket("c1")
	require.True(t, ok)
	assert.Empty(t, c1)
}

func TestCategorizeMoveItem(t *testing.T) {
	s, _ := NewSession(publishedForm())
	sheet, _ := s.Categorize("cat1")

	require.True(t, sheet.MoveItem("i1", "c1"))

	uncat, _ := sheet.Bucket(BucketUncategorized)
	assert.Equal(t, []string{"i2"}, uncat)
	c1, _ := sheet.Bucket("c1")
	assert.Equal(t, []string{"i1"}, c1)

	// 再移到另一个桶，条目只在一个桶里
	require.True(t, sheet.MoveItem("i1", "c2"))
	c1, _ = sheet.Bucket("c1")
	assert.Empty(t, c1)
	c2, _ := sheet.Bucket("c2")
	assert.Equal(t, []string{"i1"}, c2)

	assert.False(t, sheet.MoveItem("missing", "c1"))
	assert.False(t, sheet.MoveItem("i1", "missing"))
}

func TestClozeTypedAnswer(t *testing.T) {
	s, _ := NewSession(publishedForm())
	sheet, _ := s.Cloze("cloze1")

	require.True(t, sheet.SetTyped("b1", "cat"))
	assert.Equal(t, map[string]string{"b1": "cat"}, sheet.Filled())

	require.True(t, sheet.SetTyped("b1", ""))
	assert.Empty(t, sheet.Filled())

	assert.False(t, sheet.SetTyped("missing", "x"))
}

func TestClozeTokenPool(t *testing.T) {
	s, _ := NewSession(publishedForm())
	sheet, _ := s.Cloze("cloze1")

	assert.Equal(t, []string{"cat", "mat"}, sheet.AvailableTokens())

	// 词块放进空位后离开池子
	require.True(t, sheet.PlaceToken("b1", "b2"))
	assert.Equal(t, []string{"cat"}, sheet.AvailableTokens())
	assert.Equal(t, map[string]string{"b1": "mat"}, sheet.Filled())

	// 已占用的词块不能再放进其他空位
	assert.False(t, sheet.PlaceToken("b2", "b2"))

	// 拿回池子后空位清空
	require.True(t, sheet.RemoveToken("b1"))
	assert.Empty(t, sheet.Filled())
	assert.Equal(t, []string{"cat", "mat"}, sheet.AvailableTokens())
	assert.False(t, sheet.RemoveToken("b1"))
}

func TestClozeTypedEvictsToken(t *testing.T) {
	s, _ := NewSession(publishedForm())
	sheet, _ := s.Cloze("cloze1")

	require.True(t, sheet.PlaceToken("b1", "b1"))
	require.True(t, sheet.SetTyped("b1", "dog"))

	// 键入顶掉词块，词块回池
	assert.Equal(t, []string{"cat", "mat"}, sheet.AvailableTokens())
	assert.Equal(t, map[string]string{"b1": "dog"}, sheet.Filled())
}

func TestComprehensionSelect(t *testing.T) {
	s, _ := NewSession(publishedForm())
	sheet, ok := s.Comprehension("comp1")
	require.True(t, ok)

	require.True(t, sheet.Select("m1", "o2"))
	assert.Equal(t, map[string]string{"m1": "o2"}, sheet.Selected())

	// 重选覆盖
	require.True(t, sheet.Select("m1", "o1"))
	assert.Equal(t, map[string]string{"m1": "o1"}, sheet.Selected())

	sheet.Clear("m1")
	assert.Empty(t, sheet.Selected())

	assert.False(t, sheet.Select("missing", "o1"))
	assert.False(t, sheet.Select("m1", "missing"))
}

func TestAnswersAssembly(t *testing.T) {
	s, _ := NewSession(publishedForm())

	catSheet, _ := s.Categorize("cat1")
	catSheet.MoveItem("i1", "c1")

	clozeSheet, _ := s.Cloze("cloze1")
	clozeSheet.SetTyped("b1", "cat")

	compSheet, _ := s.Comprehension("comp1")
	compSheet.Select("m1", "o1")

	answers, err := s.Answers()
	require.NoError(t, err)
	require.Len(t, answers, 3)

	var buckets map[string][]string
	require.NoError(t, json.Unmarshal(answers["cat1"], &buckets))
	assert.Equal(t, []string{"i1"}, buckets["c1"])
	assert.Equal(t, []string{"i2"}, buckets[BucketUncategorized])

	var words map[string]string
	require.NoError(t, json.Unmarshal(answers["cloze1"], &words))
	assert.Equal(t, "cat", words["b1"])

	var choices map[string]string
	require.NoError(t, json.Unmarshal(answers["comp1"], &choices))
	assert.Equal(t, "o1", choices["m1"])
}
