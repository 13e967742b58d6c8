package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameTaken     = errors.New("该用户名已被注册")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrFormNotFound      = errors.New("form not found")
	ErrFormNotPublished  = errors.New("form not published")
	ErrNoFileUploaded    = errors.New("no file uploaded")
	ErrFileTooLarge      = errors.New("file exceeds the size limit")
	ErrNotAnImage        = errors.New("only image files are allowed")
	ErrObjectNotFound    = errors.New("object not found")
)
