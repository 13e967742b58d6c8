package repository

import (
	"testing"

	"formforge_backend/internal/model"
	"formforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAssignsID(t *testing.T) {
	store := NewMemoryStore()
	form := &model.Form{Title: "t", Questions: model.QuestionList{}}

	require.NoError(t, store.Create(form))
	assert.NotEmpty(t, form.ID)
	assert.False(t, form.CreatedAt.IsZero())

	got, err := store.FindByID(form.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestMemoryStoreReadIsolation(t *testing.T) {
	store := NewMemoryStore()
	form := &model.Form{
		Title: "t",
		Questions: model.QuestionList{
			&model.CategorizeQuestion{
				ID:         "q1",
				Type:       model.QuestionCategorize,
				Categories: []model.Category{{ID: "c1", Name: "A"}},
			},
		},
	}
	require.NoError(t, store.Create(form))

	got, _ := store.FindByID(form.ID)
	got.Title = "mutated"
	got.Questions[0].(*model.CategorizeQuestion).Categories[0].Name = "B"

	again, _ := store.FindByID(form.ID)
	assert.Equal(t, "t", again.Title)
	assert.Equal(t, "A", again.Questions[0].(*model.CategorizeQuestion).Categories[0].Name)
}

func TestMemoryStoreFindByShareURL(t *testing.T) {
	store := NewMemoryStore()
	share := "share-1"
	form := &model.Form{Title: "t", ShareURL: &share, Questions: model.QuestionList{}}
	require.NoError(t, store.Create(form))

	got, err := store.FindByShareURL("share-1")
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)

	_, err = store.FindByShareURL("missing")
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	store := NewMemoryStore()
	form := &model.Form{Title: "t", Questions: model.QuestionList{}}
	form.ID = "ghost"

	assert.ErrorIs(t, store.Update(form), util.ErrFormNotFound)
}

func TestMemoryStoreDeleteCascades(t *testing.T) {
	store := NewMemoryStore()
	form := &model.Form{Title: "t", Questions: model.QuestionList{}}
	require.NoError(t, store.Create(form))

	other := &model.Form{Title: "other", Questions: model.QuestionList{}}
	require.NoError(t, store.Create(other))

	responses := store.Responses()
	require.NoError(t, responses.Create(&model.FormResponse{FormID: form.ID, Answers: model.AnswerMap{}}))
	require.NoError(t, responses.Create(&model.FormResponse{FormID: form.ID, Answers: model.AnswerMap{}}))
	require.NoError(t, responses.Create(&model.FormResponse{FormID: other.ID, Answers: model.AnswerMap{}}))

	require.NoError(t, store.Delete(form.ID))

	_, err := store.FindByID(form.ID)
	assert.ErrorIs(t, err, util.ErrFormNotFound)

	// 被删表单的答卷级联删除，其他表单的不受影响
	gone, _ := responses.ListByFormID(form.ID)
	assert.Empty(t, gone)
	kept, _ := responses.ListByFormID(other.ID)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, store.Delete(form.ID), util.ErrFormNotFound)
}
