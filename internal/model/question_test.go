package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalQuestionDispatch(t *testing.T) {
	raw := []byte(`{
		"id": "q1",
		"type": "categorize",
		"question": "把下列动物归类",
		"items": [{"id": "i1", "text": "鲸鱼", "correctCategory": "c1"}],
		"categories": [{"id": "c1", "name": "哺乳动物"}]
	}`)

	q, err := UnmarshalQuestion(raw)
	require.NoError(t, err)

	cq, ok := q.(*CategorizeQuestion)
	require.True(t, ok)
	assert.Equal(t, "q1", cq.QuestionID())
	assert.Equal(t, QuestionCategorize, cq.QuestionType())
	assert.Len(t, cq.Items, 1)
	assert.Equal(t, "c1", cq.Items[0].CorrectCategory)
}

func TestUnmarshalQuestionUnknownType(t *testing.T) {
	_, err := UnmarshalQuestion([]byte(`{"id": "q1", "type": "essay"}`))
	assert.Error(t, err)
}

func TestQuestionListRoundTrip(t *testing.T) {
	raw := []byte(`[
		{"id": "q1", "type": "cloze", "text": "The cat sat", "blanks": [{"id": "b1", "word": "cat", "position": 4}]},
		{"id": "q2", "type": "comprehension", "passage": "...", "questions": []}
	]`)

	var list QuestionList
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)

	_, ok := list[0].(*ClozeQuestion)
	assert.True(t, ok)
	_, ok = list[1].(*ComprehensionQuestion)
	assert.True(t, ok)

	// 序列化后 type 标签必须保留，否则反序列化无法分派
	out, err := json.Marshal(list)
	require.NoError(t, err)

	var again QuestionList
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, "q1", again[0].QuestionID())
	assert.Equal(t, QuestionCloze, again[0].QuestionType())
}

func TestCategorizeValidateDanglingCategory(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: QuestionList{
			&CategorizeQuestion{
				ID:         "q1",
				Type:       QuestionCategorize,
				Items:      []CategorizeItem{{ID: "i1", Text: "x", CorrectCategory: "missing"}},
				Categories: []Category{{ID: "c1", Name: "A"}},
			},
		},
	}

	err := form.Validate()
	require.Error(t, err)
	ve, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations[0].Field, "correctCategory")
}

func TestCategorizeValidateEmptyCorrectCategoryAllowed(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: QuestionList{
			&CategorizeQuestion{
				ID:         "q1",
				Type:       QuestionCategorize,
				Items:      []CategorizeItem{{ID: "i1", Text: "x", CorrectCategory: ""}},
				Categories: []Category{{ID: "c1", Name: "A"}},
			},
		},
	}
	assert.NoError(t, form.Validate())
}

func TestClozeValidatePositionMatchesWord(t *testing.T) {
	good := &Form{
		Title: "t",
		Questions: QuestionList{
			&ClozeQuestion{
				ID:     "q1",
				Type:   QuestionCloze,
				Text:   "The cat sat",
				Blanks: []Blank{{ID: "b1", Word: "cat", Position: 4}},
			},
		},
	}
	assert.NoError(t, good.Validate())

	bad := &Form{
		Title: "t",
		Questions: QuestionList{
			&ClozeQuestion{
				ID:     "q1",
				Type:   QuestionCloze,
				Text:   "The cat sat",
				Blanks: []Blank{{ID: "b1", Word: "cat", Position: 5}},
			},
		},
	}
	err := bad.Validate()
	require.Error(t, err)
	ve, _ := AsValidationErrors(err)
	assert.Contains(t, ve.Violations[0].Field, "position")
}

func TestClozeValidatePositionOutOfRange(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: QuestionList{
			&ClozeQuestion{
				ID:     "q1",
				Type:   QuestionCloze,
				Text:   "short",
				Blanks: []Blank{{ID: "b1", Word: "missing", Position: 3}},
			},
		},
	}
	assert.Error(t, form.Validate())
}

func TestComprehensionValidateExactlyOneCorrect(t *testing.T) {
	build := func(correct ...bool) *Form {
		opts := make([]MCQOption, len(correct))
		for i, c := range correct {
			opts[i] = MCQOption{ID: string(rune('a' + i)), Text: "opt", IsCorrect: c}
		}
		return &Form{
			Title: "t",
			Questions: QuestionList{
				&ComprehensionQuestion{
					ID:        "q1",
					Type:      QuestionComprehension,
					Passage:   "p",
					Questions: []MCQ{{ID: "m1", Question: "?", Options: opts}},
				},
			},
		}
	}

	assert.NoError(t, build(true, false).Validate())
	assert.Error(t, build(false, false).Validate(), "没有正确选项")
	assert.Error(t, build(true, true).Validate(), "多个正确选项")
	assert.Error(t, build(true).Validate(), "少于两个选项")
}

func TestMCQAccessors(t *testing.T) {
	mcq := MCQ{
		ID: "m1",
		Options: []MCQOption{
			{ID: "o1", IsCorrect: false},
			{ID: "o2", IsCorrect: true},
		},
	}

	opt, ok := mcq.Option("o2")
	require.True(t, ok)
	assert.True(t, opt.IsCorrect)

	correct, ok := mcq.CorrectOption()
	require.True(t, ok)
	assert.Equal(t, "o2", correct.ID)

	_, ok = mcq.Option("nope")
	assert.False(t, ok)
}
