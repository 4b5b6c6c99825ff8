package utils

import "github.com/gin-gonic/gin"

// Error codes carried in the envelope body.
const (
	CodeInvalidID      = 40001
	CodeInvalidBody    = 40020
	CodeValidation     = 40021
	CodeNullContent    = 40022
	CodeRouteNotFound  = 40400
	CodeRateLimited    = 42901
	CodeInternal       = 50000
	CodeStorageFailure = 50001
)

// JSONResponse defines the uniform structure for API error responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON envelope with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}
