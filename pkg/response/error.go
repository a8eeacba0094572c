package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NotFound 引用的资源不存在
func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// InvalidOperation 调用方入参无法处理（自己订阅自己、空搜索词等）
func InvalidOperation(msg string) *BizError {
	return NewError(http.StatusUnprocessableEntity, msg)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
