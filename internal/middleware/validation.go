package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/pkg/validation"
)

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Called once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine unavailable")
	}
	return v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return validation.IsValidCedula(fl.Field().String())
	})
}

// BindJSON binds and validates a JSON body, writing the error response
// itself. Returns false when the request was rejected.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorDetail(err)))
		return false
	}
	return true
}

func validationErrorDetail(err error) *dto.ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}

	validationErrors := dto.NewValidationErrors()
	for _, e := range fieldErrors {
		validationErrors.AddError(e.Field(), formatValidationError(e))
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(validationErrors.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "cedula":
		return e.Field() + " must be a valid cedula number"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
