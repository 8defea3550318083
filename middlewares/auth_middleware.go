package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/utils"
)

// UserContextKey is where RequireAuth stores the authenticated models.User.
const UserContextKey = "user"

// RequireAuth rejects requests without a valid bearer token and attaches the
// resolved user to the context. The subject claim must name a real user and
// the user_id claim must match that user's id; a signed-but-stale payload is
// never trusted on its own.
func RequireAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, subject, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}

		var user models.User
		if err := db.Where("username = ?", subject).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}
		if user.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(UserContextKey).(models.User)
}
