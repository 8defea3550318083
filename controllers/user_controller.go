package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/middlewares"
	"github.com/macadoo18/growing-up-server/services"
)

type UserController struct {
	cfg   *config.Config
	users *services.UserService
}

func NewUserController(cfg *config.Config, users *services.UserService) *UserController {
	return &UserController{cfg: cfg, users: users}
}

// Create handles signup. Users are immutable once created; there is no
// update or delete path.
func (ct *UserController) Create(c *gin.Context) {
	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Username  *string `json:"username"`
		Password  *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	required := []struct {
		name  string
		value *string
	}{
		{"first_name", body.FirstName},
		{"last_name", body.LastName},
		{"username", body.Username},
		{"password", body.Password},
	}
	for _, field := range required {
		if field.value == nil {
			missingField(c, field.name)
			return
		}
	}

	user, err := ct.users.Create(*body.FirstName, *body.LastName, *body.Username, *body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrPasswordTooLong),
			errors.Is(err, services.ErrPasswordHasWhitespace),
			errors.Is(err, services.ErrPasswordNotComplex),
			errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, ct.cfg, err)
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	c.JSON(http.StatusCreated, ct.users.Serialize(*user))
}

// GetCurrent returns the authenticated caller's own profile.
func (ct *UserController) GetCurrent(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, ct.users.Serialize(user))
}
