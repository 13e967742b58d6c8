package controller

import (
	"errors"
	"formforge_backend/internal/model"
	"formforge_backend/internal/service"
	"formforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FormController struct {
	FormService *service.FormService
}

func NewFormController(formService *service.FormService) *FormController {
	return &FormController{FormService: formService}
}

// ListForms godoc
// @Summary 表单列表
// @Description 获取全部表单
// @Tags 表单
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Form}
// @Router /api/forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.FormService.ListForms()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, forms)
}

// CreateForm godoc
// @Summary 创建表单
// @Description 创建表单；isPublished 为 true 时即刻分配分享标识
// @Tags 表单
// @Accept json
// @Produce json
// @Param body body service.FormReq true "表单内容"
// @Success 201 {object} util.Response{data=model.Form}
// @Failure 400 {object} util.Response "校验失败"
// @Router /api/forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req service.FormReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	form, err := c.FormService.CreateForm(req)
	if err != nil {
		if ve, ok := model.AsValidationErrors(err); ok {
			util.ValidationFailed(ctx, ve.Violations)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, form)
}

// GetForm godoc
// @Summary 表单详情
// @Tags 表单
// @Produce json
// @Param id path string true "表单 ID"
// @Success 200 {object} util.Response{data=model.Form}
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/forms/{id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	form, err := c.FormService.GetForm(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrFormNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, form)
}

// UpdateForm godoc
// @Summary 更新表单
// @Description 部分更新；首次置 isPublished 为 true 时分配分享标识，再次发布不轮换
// @Tags 表单
// @Accept json
// @Produce json
// @Param id path string true "表单 ID"
// @Param body body service.FormReq true "要修改的字段"
// @Success 200 {object} util.Response{data=model.Form}
// @Failure 400 {object} util.Response "校验失败"
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/forms/{id} [put]
func (c *FormController) UpdateForm(ctx *gin.Context) {
	var req service.FormReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	form, err := c.FormService.UpdateForm(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrFormNotFound) {
			util.NotFound(ctx)
			return
		}
		if ve, ok := model.AsValidationErrors(err); ok {
			util.ValidationFailed(ctx, ve.Violations)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, form)
}

// DeleteForm godoc
// @Summary 删除表单
// @Description 连同其下所有答卷一并删除
// @Tags 表单
// @Param id path string true "表单 ID"
// @Success 204 "已删除"
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/forms/{id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	if err := c.FormService.DeleteForm(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrFormNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// GetSharedForm godoc
// @Summary 按分享标识获取表单
// @Description 答题端入口；未发布或不存在的表单一律 404
// @Tags 表单
// @Produce json
// @Param shareUrl path string true "分享标识"
// @Success 200 {object} util.Response{data=model.Form}
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/share/{shareUrl} [get]
func (c *FormController) GetSharedForm(ctx *gin.Context) {
	form, err := c.FormService.GetFormByShareURL(ctx.Param("shareUrl"))
	if err != nil {
		if errors.Is(err, util.ErrFormNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, form)
}
