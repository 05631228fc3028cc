package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// AuthMiddleware requires an "Authorization: Bearer <token>" header and
// attaches the token's user, without its password hash, to the context.
func AuthMiddleware(authUC usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": usecase.MsgTokenMissing})
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			var appErr *usecase.AppError
			if errors.As(err, &appErr) && appErr.Kind == usecase.KindUnauthorized {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": appErr.Message})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
