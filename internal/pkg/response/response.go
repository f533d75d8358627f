package response

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，code 同时作为 HTTP 状态码
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误，按错误分类映射 HTTP 状态码
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Json错误")
		return
	}

	code, known := service.HTTPStatus(err)
	if !known {
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
