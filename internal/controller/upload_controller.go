package controller

import (
	"errors"
	"formforge_backend/internal/service"
	"formforge_backend/internal/util"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// UploadImage godoc
// @Summary 上传图片
// @Description 仅接受 image/* 文件，大小受配置限制
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 201 {object} util.Response{data=object} "返回可访问的 URL"
// @Failure 400 {object} util.Response "缺少文件、超限或非图片"
// @Router /api/upload [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, util.ErrNoFileUploaded.Error())
		return
	}

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, util.ErrFileTooLarge) || errors.Is(err, util.ErrNotAnImage) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}

// GetUploadURL godoc
// @Summary 获取对象直传地址
// @Description 存储端支持预签名时返回直传 URL，否则回退到本服务的上传端点
// @Tags 上传
// @Accept json
// @Produce json
// @Success 200 {object} util.Response{data=object} "uploadURL"
// @Router /api/objects/upload [post]
func (c *UploadController) GetUploadURL(ctx *gin.Context) {
	filename := "images/" + time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6)

	uploadURL, err := c.StorageService.PresignedUploadURL(ctx.Request.Context(), filename)
	if err != nil {
		// 本地存储等不支持预签名的场景，回退到服务端上传
		uploadURL = "/api/upload"
	}

	util.Success(ctx, gin.H{"uploadURL": uploadURL})
}

// ServeObject godoc
// @Summary 读取已上传对象
// @Tags 上传
// @Produce octet-stream
// @Param path path string true "对象路径"
// @Success 200
// @Failure 404 {object} util.Response "对象不存在"
// @Router /public-objects/{path} [get]
func (c *UploadController) ServeObject(ctx *gin.Context) {
	name := ctx.Param("path")
	if len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	if name == "" || filepath.Clean(name) != name {
		util.NotFound(ctx)
		return
	}

	obj, err := c.StorageService.Open(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, util.ErrObjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	defer obj.Close()

	// 嗅探内容类型，不依赖对象名后缀
	head := make([]byte, 512)
	n, _ := io.ReadFull(obj, head)
	mimeType := util.MimeOctetStream
	if n > 0 {
		mimeType = http.DetectContentType(head[:n])
	}
	ctx.Header("Content-Type", mimeType)
	if util.IsImage(mimeType) {
		ctx.Header("Cache-Control", "public, max-age=86400")
	}

	ctx.Status(http.StatusOK)
	ctx.Writer.Write(head[:n])
	io.Copy(ctx.Writer, obj)
}
