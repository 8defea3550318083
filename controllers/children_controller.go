package controllers

import (
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/middlewares"
	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/services"
)

const childNotFoundMessage = "Child does not exist"

type ChildrenController struct {
	cfg      *config.Config
	children *services.ChildrenService
}

func NewChildrenController(cfg *config.Config, children *services.ChildrenService) *ChildrenController {
	return &ChildrenController{cfg: cfg, children: children}
}

func (ct *ChildrenController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	children, err := ct.children.ListByUser(user.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	serialized := make([]models.Child, 0, len(children))
	for _, child := range children {
		serialized = append(serialized, ct.children.Serialize(child))
	}
	c.JSON(http.StatusOK, serialized)
}

func (ct *ChildrenController) Create(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var body struct {
		FirstName *string `json:"first_name"`
		Age       *int    `json:"age"`
		Weight    *string `json:"weight"`
		Image     *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.FirstName == nil {
		missingField(c, "first_name")
		return
	}
	if body.Age == nil {
		missingField(c, "age")
		return
	}
	if body.Weight == nil {
		missingField(c, "weight")
		return
	}

	child := models.Child{
		FirstName: *body.FirstName,
		Age:       *body.Age,
		Weight:    *body.Weight,
		UserID:    user.ID,
	}
	if body.Image != nil {
		child.Image = *body.Image
	}

	if err := ct.children.Create(&child); err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.FormatUint(uint64(child.ID), 10)))
	c.JSON(http.StatusCreated, ct.children.Serialize(child))
}

// getOwned loads the child for the path id when it belongs to the caller, or
// writes the 404 and returns nil.
func (ct *ChildrenController) getOwned(c *gin.Context) *models.Child {
	user := middlewares.CurrentUser(c)

	child, err := ct.children.GetForUser(parseID(c.Param("childId")), user.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return nil
	}
	if child == nil {
		notFound(c, childNotFoundMessage)
		return nil
	}
	return child
}

func (ct *ChildrenController) Get(c *gin.Context) {
	child := ct.getOwned(c)
	if child == nil {
		return
	}
	c.JSON(http.StatusOK, ct.children.Serialize(*child))
}

func (ct *ChildrenController) Update(c *gin.Context) {
	child := ct.getOwned(c)
	if child == nil {
		return
	}

	var patch services.ChildPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain value to update"})
		return
	}

	updated, err := ct.children.Update(child.ID, changes)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.JSON(http.StatusOK, ct.children.Serialize(*updated))
}

func (ct *ChildrenController) Delete(c *gin.Context) {
	child := ct.getOwned(c)
	if child == nil {
		return
	}

	if err := ct.children.Delete(child.ID); err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.Status(http.StatusNoContent)
}
