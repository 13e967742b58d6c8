package service

import (
	"testing"

	"formforge_backend/internal/config"
	"formforge_backend/internal/model"
	"formforge_backend/internal/repository"
	"formforge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func newFormService() (*FormService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewFormService(store, nil, &config.Config{}), store
}

func TestCreateFormDraftHasNoShareURL(t *testing.T) {
	svc, _ := newFormService()

	form, err := svc.CreateForm(FormReq{Title: strptr("My Form")})
	require.NoError(t, err)

	assert.NotEmpty(t, form.ID)
	assert.False(t, form.IsPublished)
	assert.Nil(t, form.ShareURL)
	assert.NotNil(t, form.Questions)
}

func TestCreateFormPublishedGetsShareURL(t *testing.T) {
	svc, _ := newFormService()

	form, err := svc.CreateForm(FormReq{
		Title:       strptr("My Form"),
		IsPublished: boolptr(true),
	})
	require.NoError(t, err)

	require.NotNil(t, form.ShareURL)
	assert.NotEmpty(t, *form.ShareURL)
}

func TestCreateFormValidationRejected(t *testing.T) {
	svc, _ := newFormService()

	_, err := svc.CreateForm(FormReq{})
	require.Error(t, err)
	ve, ok := model.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Violations[0].Field)
}

func TestUpdateFormPartialMerge(t *testing.T) {
	svc, _ := newFormService()
	form, _ := svc.CreateForm(FormReq{
		Title:       strptr("orig"),
		Description: strptr("desc"),
	})

	updated, err := svc.UpdateForm(form.ID, FormReq{Title: strptr("changed")})
	require.NoError(t, err)

	assert.Equal(t, "changed", updated.Title)
	assert.Equal(t, "desc", updated.Description, "缺省字段保持不变")
}

func TestShareURLAssignedOnceAndStable(t *testing.T) {
	svc, _ := newFormService()
	form, _ := svc.CreateForm(FormReq{Title: strptr("t")})

	// 首次发布分配
	published, err := svc.UpdateForm(form.ID, FormReq{IsPublished: boolptr(true)})
	require.NoError(t, err)
	require.NotNil(t, published.ShareURL)
	first := *published.ShareURL

	// 下架再发布不轮换
	unpublished, err := svc.UpdateForm(form.ID, FormReq{IsPublished: boolptr(false)})
	require.NoError(t, err)
	require.NotNil(t, unpublished.ShareURL)
	assert.Equal(t, first, *unpublished.ShareURL)

	republished, err := svc.UpdateForm(form.ID, FormReq{IsPublished: boolptr(true)})
	require.NoError(t, err)
	assert.Equal(t, first, *republished.ShareURL)
}

func TestUpdateFormNotFound(t *testing.T) {
	svc, _ := newFormService()
	_, err := svc.UpdateForm("missing", FormReq{Title: strptr("x")})
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestGetFormByShareURL(t *testing.T) {
	svc, _ := newFormService()
	form, _ := svc.CreateForm(FormReq{
		Title:       strptr("t"),
		IsPublished: boolptr(true),
	})

	got, err := svc.GetFormByShareURL(*form.ShareURL)
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)

	_, err = svc.GetFormByShareURL("missing")
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestGetFormByShareURLHidesUnpublished(t *testing.T) {
	svc, _ := newFormService()
	form, _ := svc.CreateForm(FormReq{
		Title:       strptr("t"),
		IsPublished: boolptr(true),
	})
	shareURL := *form.ShareURL

	_, err := svc.UpdateForm(form.ID, FormReq{IsPublished: boolptr(false)})
	require.NoError(t, err)

	_, err = svc.GetFormByShareURL(shareURL)
	assert.ErrorIs(t, err, util.ErrFormNotFound)
}

func TestDeleteFormCascades(t *testing.T) {
	svc, store := newFormService()
	form, _ := svc.CreateForm(FormReq{
		Title:       strptr("t"),
		IsPublished: boolptr(true),
	})

	respStore := store.Responses()
	require.NoError(t, respStore.Create(&model.FormResponse{
		FormID:  form.ID,
		Answers: model.AnswerMap{},
	}))

	require.NoError(t, svc.DeleteForm(form.ID))

	_, err := svc.GetForm(form.ID)
	assert.ErrorIs(t, err, util.ErrFormNotFound)

	responses, err := respStore.ListByFormID(form.ID)
	require.NoError(t, err)
	assert.Empty(t, responses)

	assert.ErrorIs(t, svc.DeleteForm(form.ID), util.ErrFormNotFound)
}

func TestListFormsNewestFirst(t *testing.T) {
	svc, _ := newFormService()
	svc.CreateForm(FormReq{Title: strptr("a")})
	svc.CreateForm(FormReq{Title: strptr("b")})

	forms, err := svc.ListForms()
	require.NoError(t, err)
	assert.Len(t, forms, 2)
}
