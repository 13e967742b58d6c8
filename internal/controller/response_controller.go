package controller

import (
	"errors"
	"formforge_backend/internal/model"
	"formforge_backend/internal/service"
	"formforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	ResponseService *service.ResponseService
}

func NewResponseController(responseService *service.ResponseService) *ResponseController {
	return &ResponseController{ResponseService: responseService}
}

// SubmitResponse godoc
// @Summary 提交答卷
// @Description 在已发布的表单下提交一份答卷；未发布的表单按不存在处理
// @Tags 答卷
// @Accept json
// @Produce json
// @Param id path string true "表单 ID"
// @Param body body service.ResponseReq true "答案集合"
// @Success 201 {object} util.Response{data=model.FormResponse}
// @Failure 400 {object} util.Response "答案校验失败"
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/forms/{id}/responses [post]
func (c *ResponseController) SubmitResponse(ctx *gin.Context) {
	var req service.ResponseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.ResponseService.Submit(ctx.Param("id"), req)
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

	util.Created(ctx, resp)
}

// ListResponses godoc
// @Summary 答卷列表
// @Description 获取指定表单的全部答卷
// @Tags 答卷
// @Produce json
// @Param id path string true "表单 ID"
// @Success 200 {object} util.Response{data=[]model.FormResponse}
// @Failure 404 {object} util.Response "表单不存在"
// @Router /api/forms/{id}/responses [get]
func (c *ResponseController) ListResponses(ctx *gin.Context) {
	responses, err := c.ResponseService.ListByFormID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrFormNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, responses)
}
