package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/controllers"
	"github.com/macadoo18/growing-up-server/middlewares"
	"github.com/macadoo18/growing-up-server/services"
)

// SetupRouter wires services and controllers and registers every route.
// uploader may be nil when the blob store is not configured.
func SetupRouter(cfg *config.Config, db *gorm.DB, uploader controllers.ImageUploader) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if cfg.IsProduction() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "server error"},
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(recovered)})
	}))

	userSvc := services.NewUserService(db)
	childrenSvc := services.NewChildrenService(db)
	eatingSvc := services.NewEatingService(db)
	sleepingSvc := services.NewSleepingService(db)

	authCtl := controllers.NewAuthController(cfg, userSvc)
	userCtl := controllers.NewUserController(cfg, userSvc)
	childrenCtl := controllers.NewChildrenController(cfg, childrenSvc)
	eatingCtl := controllers.NewEatingController(cfg, childrenSvc, eatingSvc)
	sleepingCtl := controllers.NewSleepingController(cfg, childrenSvc, sleepingSvc)
	uploadCtl := controllers.NewUploadController(cfg, uploader)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "The good stuff")
	})

	api := r.Group("/api")

	// Public routes
	api.POST("/users", userCtl.Create)
	api.POST("/auth/login", authCtl.Login)

	// Everything else sits behind the auth gate
	protected := api.Group("")
	protected.Use(middlewares.RequireAuth(db, cfg.JWTSecret))
	{
		protected.GET("/users", userCtl.GetCurrent)

		protected.GET("/children", childrenCtl.List)
		protected.POST("/children", childrenCtl.Create)
		protected.GET("/children/:childId", childrenCtl.Get)
		protected.PATCH("/children/:childId", childrenCtl.Update)
		protected.DELETE("/children/:childId", childrenCtl.Delete)

		protected.GET("/eating/all/:childId", eatingCtl.ListByChild)
		protected.POST("/eating/all/:childId", eatingCtl.Create)
		protected.GET("/eating/:mealId", eatingCtl.Get)
		protected.PATCH("/eating/:mealId", eatingCtl.Update)
		protected.DELETE("/eating/:mealId", eatingCtl.Delete)

		protected.GET("/sleeping/all/:childId", sleepingCtl.ListByChild)
		protected.POST("/sleeping/all/:childId", sleepingCtl.Create)
		protected.GET("/sleeping/:sleepId", sleepingCtl.Get)
		protected.PATCH("/sleeping/:sleepId", sleepingCtl.Update)
		protected.DELETE("/sleeping/:sleepId", sleepingCtl.Delete)

		protected.POST("/uploads", uploadCtl.Upload)
	}

	return r
}
