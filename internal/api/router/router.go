package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/smartsched/reminder-scheduler/internal/api/handlers/location"
	"github.com/smartsched/reminder-scheduler/internal/api/handlers/reminder"
	"github.com/smartsched/reminder-scheduler/internal/middlewares"
)

func New(reminderHandler *reminder.Handler, locationHandler *location.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		reminders := api.Group("/reminders")
		{
			reminders.POST("/", reminderHandler.Create)
			reminders.GET("/", reminderHandler.GetAll)
			reminders.GET("/:id", reminderHandler.Get)
			reminders.PUT("/:id", reminderHandler.Update)
			reminders.DELETE("/:id", reminderHandler.Delete)
		}

		api.POST("/location", locationHandler.Report)
	}

	return e
}
