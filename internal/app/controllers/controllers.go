// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/middleware"
)

// credential pulls the backend credential injected by the session
// middleware, answering 401 itself when it is missing.
func credential(ctx *gin.Context) (idrive.Credential, bool) {
	cred, ok := middleware.CredentialFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return idrive.Credential{}, false
	}
	return cred, true
}

// pathID parses a positive integer path parameter, answering 400 itself on
// malformed input.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier").
			WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
