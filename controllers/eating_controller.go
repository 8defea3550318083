package controllers

import (
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/middlewares"
	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/services"
)

const mealNotFoundMessage = "Meal does not exist"

type EatingController struct {
	cfg      *config.Config
	children *services.ChildrenService
	eating   *services.EatingService
}

func NewEatingController(cfg *config.Config, children *services.ChildrenService, eating *services.EatingService) *EatingController {
	return &EatingController{cfg: cfg, children: children, eating: eating}
}

// ownedChild resolves the :childId path parameter against the caller's
// children, writing the 404 when it is absent or owned by someone else.
func (ct *EatingController) ownedChild(c *gin.Context) *models.Child {
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

func (ct *EatingController) ListByChild(c *gin.Context) {
	child := ct.ownedChild(c)
	if child == nil {
		return
	}

	meals, err := ct.eating.ListByChild(child.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	serialized := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		serialized = append(serialized, ct.eating.Serialize(meal))
	}
	c.JSON(http.StatusOK, serialized)
}

func (ct *EatingController) Create(c *gin.Context) {
	child := ct.ownedChild(c)
	if child == nil {
		return
	}

	var body struct {
		Duration *string    `json:"duration"`
		FoodType *string    `json:"food_type"`
		SideFed  *string    `json:"side_fed"`
		Notes    *string    `json:"notes"`
		Date     *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Duration == nil {
		missingField(c, "duration")
		return
	}
	if body.FoodType == nil {
		missingField(c, "food_type")
		return
	}

	meal := models.Meal{
		Duration: *body.Duration,
		FoodType: *body.FoodType,
		ChildID:  child.ID,
	}
	if body.SideFed != nil {
		meal.SideFed = *body.SideFed
	}
	if body.Notes != nil {
		meal.Notes = *body.Notes
	}
	if body.Date != nil {
		meal.Date = *body.Date
	}

	if err := ct.eating.Create(&meal); err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.FormatUint(uint64(meal.ID), 10)))
	c.JSON(http.StatusCreated, ct.eating.Serialize(meal))
}

func (ct *EatingController) getOwned(c *gin.Context) *models.Meal {
	user := middlewares.CurrentUser(c)

	meal, err := ct.eating.GetForUser(parseID(c.Param("mealId")), user.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return nil
	}
	if meal == nil {
		notFound(c, mealNotFoundMessage)
		return nil
	}
	return meal
}

func (ct *EatingController) Get(c *gin.Context) {
	meal := ct.getOwned(c)
	if meal == nil {
		return
	}
	c.JSON(http.StatusOK, ct.eating.Serialize(*meal))
}

func (ct *EatingController) Update(c *gin.Context) {
	meal := ct.getOwned(c)
	if meal == nil {
		return
	}

	var patch services.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain value to update"})
		return
	}

	updated, err := ct.eating.Update(meal.ID, changes)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.JSON(http.StatusOK, ct.eating.Serialize(*updated))
}

func (ct *EatingController) Delete(c *gin.Context) {
	meal := ct.getOwned(c)
	if meal == nil {
		return
	}

	if err := ct.eating.Delete(meal.ID); err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.Status(http.StatusNoContent)
}
