package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/app/models/dto"
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/auth"
)

// Context keys set by SessionAuth
const (
	ContextUserID      = "userID"
	ContextUserName    = "userName"
	ContextRoleID      = "roleID"
	ContextPermissions = "permissions"
	ContextCredential  = "credential"
)

// AuthMiddleware validates gateway sessions and gates routes on permissions
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// SessionAuth validates the session token and injects the caller's identity,
// permission set and backend credential into the request context.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// Swagger UI sometimes sends the token as a query parameter
		if authHeader == "" {
			if queryToken := c.Query("authorization"); queryToken != "" {
				authHeader = queryToken
			} else if queryToken := c.Query("token"); queryToken != "" {
				authHeader = queryToken
			}
		}

		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		var tokenString string
		var err error

		// Accept a raw JWT without the Bearer prefix for Swagger UI convenience
		if strings.Count(authHeader, ".") == 2 && !strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader
		} else {
			tokenString, err = auth.ExtractBearerToken(authHeader)
			if err != nil {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
				errorDetail = errorDetail.WithDetails("Invalid token format")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
				return
			}
		}

		claims, err := m.sessions.Validate(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Session has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextRoleID, claims.RoleID)
		c.Set(ContextPermissions, models.NewPermissionSet(claims.Permissions))
		c.Set(ContextCredential, idrive.Credential{Token: claims.BackendToken})

		c.Next()
	}
}

// PermissionRequired gates a route on one permission. SessionAuth must run
// first on the same chain.
func (m *AuthMiddleware) PermissionRequired(perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, ok := PermissionsFrom(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Permission set not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !perms.Has(perm) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CredentialFrom returns the backend credential injected by SessionAuth
func CredentialFrom(c *gin.Context) (idrive.Credential, bool) {
	value, exists := c.Get(ContextCredential)
	if !exists {
		return idrive.Credential{}, false
	}
	cred, ok := value.(idrive.Credential)
	return cred, ok
}

// PermissionsFrom returns the permission set injected by SessionAuth
func PermissionsFrom(c *gin.Context) (models.PermissionSet, bool) {
	value, exists := c.Get(ContextPermissions)
	if !exists {
		return nil, false
	}
	perms, ok := value.(models.PermissionSet)
	return perms, ok
}
