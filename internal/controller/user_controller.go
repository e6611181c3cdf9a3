package controller

import (
	"codelearn_backend/internal/repository"
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserRepo *repository.UserRepository
	Storage  *service.StorageService
}

func NewUserController(userRepo *repository.UserRepository, storage *service.StorageService) *UserController {
	return &UserController{UserRepo: userRepo, Storage: storage}
}

// @Summary 上传头像
// @Description 上传用户头像，支持 jpg/png/gif/webp
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "头像文件"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "文件缺失或格式不支持"
// @Router /api/user/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	const maxAvatarSize = 5 << 20
	if fileHeader.Size > maxAvatarSize {
		util.BadRequest(ctx, "avatar exceeds 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.Storage.UploadAvatar(ctx.Request.Context(), claims.UserID,
		fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserRepo.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": url})
}
