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

const sleepNotFoundMessage = "Sleep instance does not exist"

type SleepingController struct {
	cfg      *config.Config
	children *services.ChildrenService
	sleeping *services.SleepingService
}

func NewSleepingController(cfg *config.Config, children *services.ChildrenService, sleeping *services.SleepingService) *SleepingController {
	return &SleepingController{cfg: cfg, children: children, sleeping: sleeping}
}

func (ct *SleepingController) ownedChild(c *gin.Context) *models.Child {
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

func (ct *SleepingController) ListByChild(c *gin.Context) {
	child := ct.ownedChild(c)
	if child == nil {
		return
	}

	sleeps, err := ct.sleeping.ListByChild(child.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	serialized := make([]models.Sleep, 0, len(sleeps))
	for _, sleep := range sleeps {
		serialized = append(serialized, ct.sleeping.Serialize(sleep))
	}
	c.JSON(http.StatusOK, serialized)
}

func (ct *SleepingController) Create(c *gin.Context) {
	child := ct.ownedChild(c)
	if child == nil {
		return
	}

	var body struct {
		Duration      *string    `json:"duration"`
		SleepType     *string    `json:"sleep_type"`
		SleepCategory *string    `json:"sleep_category"`
		Notes         *string    `json:"notes"`
		Date          *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Duration == nil {
		missingField(c, "duration")
		return
	}
	if body.SleepType == nil {
		missingField(c, "sleep_type")
		return
	}
	if body.SleepCategory == nil {
		missingField(c, "sleep_category")
		return
	}

	sleep := models.Sleep{
		Duration:      *body.Duration,
		SleepType:     *body.SleepType,
		SleepCategory: *body.SleepCategory,
		ChildID:       child.ID,
	}
	if body.Notes != nil {
		sleep.Notes = *body.Notes
	}
	if body.Date != nil {
		sleep.Date = *body.Date
	}

	if err := ct.sleeping.Create(&sleep); err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.FormatUint(uint64(sleep.ID), 10)))
	c.JSON(http.StatusCreated, ct.sleeping.Serialize(sleep))
}

func (ct *SleepingController) getOwned(c *gin.Context) *models.Sleep {
	user := middlewares.CurrentUser(c)

	sleep, err := ct.sleeping.GetForUser(parseID(c.Param("sleepId")), user.ID)
	if err != nil {
		internalError(c, ct.cfg, err)
		return nil
	}
	if sleep == nil {
		notFound(c, sleepNotFoundMessage)
		return nil
	}
	return sleep
}

func (ct *SleepingController) Get(c *gin.Context) {
	sleep := ct.getOwned(c)
	if sleep == nil {
		return
	}
	c.JSON(http.StatusOK, ct.sleeping.Serialize(*sleep))
}

func (ct *SleepingController) Update(c *gin.Context) {
	sleep := ct.getOwned(c)
	if sleep == nil {
		return
	}

	var patch services.SleepPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain value to update"})
		return
	}

	updated, err := ct.sleeping.Update(sleep.ID, changes)
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.JSON(http.StatusOK, ct.sleeping.Serialize(*updated))
}

func (ct *SleepingController) Delete(c *gin.Context) {
	sleep := ct.getOwned(c)
	if sleep == nil {
		return
	}

	if err := ct.sleeping.Delete(sleep.ID); err != nil {
		internalError(c, ct.cfg, err)
		return
	}
	c.Status(http.StatusNoContent)
}
