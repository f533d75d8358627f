package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserEmailExist    = errors.New("邮箱已注册")
	ErrUserInactive      = errors.New("用户未激活")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrTokenInvalid      = errors.New("Token 无效或已过期")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrUploadFailed      = errors.New("媒体上传失败")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserEmailExist:    BadRequest,
	ErrUserInactive:      Unauthorized,
	ErrPasswordIncorrect: Unauthorized,
	ErrTokenInvalid:      Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrUploadFailed:      InternalServerError,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}

// HTTPStatus 解析错误对应的 HTTP 状态码，支持包装后的错误
func HTTPStatus(err error) (int, bool) {
	for e, code := range ErrorMap {
		if errors.Is(err, e) {
			return code, true
		}
	}
	return InternalServerError, false
}
