package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("邮箱或密码错误")
	ErrLanguageNotFound    = errors.New("language not found")
	ErrLevelNotFound       = errors.New("level not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseLocked      = errors.New("exercise locked")
	ErrEmptySubmission     = errors.New("empty submission")
	ErrReviewFieldsMissing = errors.New("Missing required fields: code, language")
)
