package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/services"
	"github.com/macadoo18/growing-up-server/utils"
)

type AuthController struct {
	cfg   *config.Config
	users *services.UserService
}

func NewAuthController(cfg *config.Config, users *services.UserService) *AuthController {
	return &AuthController{cfg: cfg, users: users}
}

// Login exchanges credentials for a bearer token. Failures are 400, not 401:
// this endpoint runs before authentication exists.
func (ct *AuthController) Login(c *gin.Context) {
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Username == nil {
		missingField(c, "username")
		return
	}
	if body.Password == nil {
		missingField(c, "password")
		return
	}

	user, err := ct.users.Authenticate(*body.Username, *body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, ct.cfg, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, ct.cfg.JWTSecret)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": token})
}
