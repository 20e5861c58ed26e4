package middleware

import (
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserActivityRepo is the single repository call this middleware needs.
type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

// ActivityMiddleware records when an authenticated user was last seen.
// Best-effort; a failed update never blocks the request.
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			go repo.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}
