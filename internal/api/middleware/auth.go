package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/pkg/jwthelper"
)

const (
	// ContextUserID is the gin context key for the authenticated user's id.
	ContextUserID = "userID"
	// ContextUserType is the gin context key for the authenticated user's type.
	ContextUserType = "userType"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stashes the
// token claims in the gin context for handlers downstream.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing authorization header"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid authorization header"))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, parts[1])
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired token"))
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUserType, claims.UserType)
		ctx.Next()
	}
}

// RequireUserType allows only the listed user types past. It assumes
// VerifyJWT already ran.
func RequireUserType(types ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	return func(ctx *gin.Context) {
		userType := ctx.GetString(ContextUserType)
		if _, ok := allowed[userType]; !ok {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("insufficient permissions")))
			return
		}

		ctx.Next()
	}
}
