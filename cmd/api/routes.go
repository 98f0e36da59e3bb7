package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(app.Logger))

	corsCfg := cors.DefaultConfig()
	origins := app.Config.GetCORSOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	h := app.Handler

	r.GET("/health", h.Health)

	apps := r.Group("/applications")
	{
		apps.POST("", h.CreateApplication)
		apps.GET("", h.ListApplications)
		apps.GET("/:id", h.GetApplication)
		apps.PUT("/:id", h.UpdateApplication)
		apps.DELETE("/:id", h.DeleteApplication)

		apps.GET("/:id/history", h.ListStatusHistory)
		apps.POST("/:id/interviews", h.CreateInterview)
		apps.GET("/:id/interviews", h.ListInterviews)
		apps.POST("/:id/reminders", h.CreateReminder)
		apps.GET("/:id/reminders", h.ListReminders)
	}

	r.PATCH("/interviews/:id", h.UpdateInterview)
	r.DELETE("/interviews/:id", h.DeleteInterview)
	r.PATCH("/reminders/:id", h.UpdateReminder)
	r.DELETE("/reminders/:id", h.DeleteReminder)

	goals := r.Group("/goals")
	{
		goals.POST("", h.CreateGoal)
		goals.GET("", h.ListGoals)
		goals.GET("/:id", h.GetGoal)
		goals.DELETE("/:id", h.DeleteGoal)
	}

	return r
}
