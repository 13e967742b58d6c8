package service

import (
	"encoding/json"
	"testing"

	"formforge_backend/internal/config"
	"formforge_backend/internal/model"
	"formforge_backend/internal/repository"
	"formforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseFixture(t *testing.T) (*ResponseService, *model.Form) {
	t.Helper()
	store := repository.NewMemoryStore()
	formSvc := NewFormService(store, nil, &config.Config{})

	questions := model.QuestionList{
		&model.CategorizeQuestion{
			ID:   "cat1",
			Type: model.QuestionCategorize,
			Items: []model.CategorizeItem{
				{ID: "i1", Text: "x", CorrectCategory: "c1"},
			},
			Categories: []model.Category{{ID: "c1", Name: "A"}},
		},
		&model.ClozeQuestion{
			ID:     "cloze1",
			Type:   model.QuestionCloze,
			Text:   "The cat sat",
			Blanks: []model.Blank{{ID: "b1", Word: "cat", Position: 4}},
		},
		&model.ComprehensionQuestion{
			ID:      "comp1",
			Type:    model.QuestionComprehension,
			Passage: "p",
			Questions: []model.MCQ{
				{ID: "m1", Question: "?", Options: []model.MCQOption{
					{ID: "o1", IsCorrect: true},
					{ID: "o2", IsCorrect: false},
				}},
			},
		},
	}

	form, err := formSvc.CreateForm(FormReq{
		Title:       strptr("t"),
		Questions:   &questions,
		IsPublished: boolptr(true),
	})
	require.NoError(t, err)

	return NewResponseService(store.Responses(), store), form
}

func raw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestSubmitResponse(t *testing.T) {
	svc, form := newResponseFixture(t)

	resp, err := svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{
			"cat1":   raw(t, map[string][]string{"c1": {"i1"}, "uncategorized": {}}),
			"cloze1": raw(t, map[string]string{"b1": "cat"}),
			"comp1":  raw(t, map[string]string{"m1": "o2"}),
		},
		UserEmail: "who@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, form.ID, resp.FormID)
	assert.False(t, resp.SubmittedAt.IsZero())

	list, err := svc.ListByFormID(form.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "who@example.com", list[0].UserEmail)
}

func TestSubmitToUnknownForm(t *testing.T) {
	svc, _ := newResponseFixture(t)
	_, err := svc.Submit("missing", ResponseReq{Answers: model.AnswerMap{}})
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestSubmitToUnpublishedFormIsHidden(t *testing.T) {
	store := repository.NewMemoryStore()
	formSvc := NewFormService(store, nil, &config.Config{})
	form, err := formSvc.CreateForm(FormReq{Title: strptr("t")})
	require.NoError(t, err)

	svc := NewResponseService(store.Responses(), store)
	_, err = svc.Submit(form.ID, ResponseReq{Answers: model.AnswerMap{}})
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestSubmitRejectsUnknownQuestion(t *testing.T) {
	svc, form := newResponseFixture(t)

	_, err := svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{"nope": raw(t, map[string]string{})},
	})
	require.Error(t, err)
	ve, ok := model.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations[0].Field, "nope")
}

func TestSubmitRejectsBadCategorizePayload(t *testing.T) {
	svc, form := newResponseFixture(t)

	cases := map[string]model.AnswerMap{
		"载荷形状错误": {"cat1": raw(t, "not a map")},
		"未知桶":    {"cat1": raw(t, map[string][]string{"ghost": {"i1"}})},
		"未知条目":   {"cat1": raw(t, map[string][]string{"c1": {"ghost"}})},
		"条目重复放置": {"cat1": raw(t, map[string][]string{"c1": {"i1"}, "uncategorized": {"i1"}})},
	}

	for name, answers := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(form.ID, ResponseReq{Answers: answers})
			require.Error(t, err)
			_, ok := model.AsValidationErrors(err)
			assert.True(t, ok)
		})
	}
}

func TestSubmitRejectsBadClozeAndComprehension(t *testing.T) {
	svc, form := newResponseFixture(t)

	_, err := svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{"cloze1": raw(t, map[string]string{"ghost": "x"})},
	})
	assert.Error(t, err, "未知填空位")

	_, err = svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{"comp1": raw(t, map[string]string{"m1": "ghost"})},
	})
	assert.Error(t, err, "未知选项")

	_, err = svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{"comp1": raw(t, map[string]string{"ghost": "o1"})},
	})
	assert.Error(t, err, "未知子题")
}

func TestPartialAnswersAccepted(t *testing.T) {
	svc, form := newResponseFixture(t)

	// 未作答的题目可以缺省
	_, err := svc.Submit(form.ID, ResponseReq{
		Answers: model.AnswerMap{"cloze1": raw(t, map[string]string{"b1": "dog"})},
	})
	assert.NoError(t, err)
}

func TestListByFormIDUnknownForm(t *testing.T) {
	svc, _ := newResponseFixture(t)
	_, err := svc.ListByFormID("missing")
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}
