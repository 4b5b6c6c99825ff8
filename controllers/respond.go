package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cppla/blog/middleware"
	"github.com/cppla/blog/models"
	"github.com/cppla/blog/services"
	"github.com/cppla/blog/utils"
)

// parseID reads a numeric path parameter. On failure it writes the 400 response.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidID, "invalid post id")
		return 0, false
	}
	return uint(id), true
}

func respondBindError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, models.ValidationMessage(err))
		return
	}
	utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidBody, "invalid request payload")
}

// respondError maps a service error onto a status code.
// Not found answers 404 with an empty body, storage failures are logged and answer 500.
func respondError(ctx *gin.Context, err error, action string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		ctx.Status(http.StatusNotFound)
	case errors.Is(err, models.ErrNullContent), errors.Is(err, models.ErrNullPost):
		utils.Error(ctx, http.StatusBadRequest, utils.CodeNullContent, err.Error())
	case errors.As(err, &verrs):
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, models.ValidationMessage(err))
	default:
		utils.Logger.Error("failed to "+action,
			zap.Error(err),
			zap.String("request_id", ctx.GetString(middleware.ContextRequestIDKey)),
		)
		_ = ctx.Error(err)
		utils.Error(ctx, http.StatusInternalServerError, utils.CodeStorageFailure, "failed to "+action)
	}
}
