package routes

import (
	"retifica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders         = "/orders"
	PathStage          = "/stages/:stage"
	PathService        = "/services/:type"
	PathEmployees      = "/employees"
	PathSubtaskPresets = "/subtask-presets/:type"
	PathPauseReasons   = "/pause-reasons"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

// addStageRoutes mounts the stage actions. Inspection stages take the
// inspected type in the service_type query parameter.
func addStageRoutes(rg *gin.RouterGroup, h *handlers.StageHandler) {
	stage := rg.Group(PathOrders + "/:id" + PathStage)
	{
		stage.POST("/start", h.Start)
		stage.POST("/pause", h.Pause)
		stage.POST("/resume", h.Resume)
		stage.POST("/complete", h.Complete)
		stage.POST("/reopen", h.Reopen)
		stage.GET("/timer", h.Timer)
		stage.GET("/timer/stream", h.StreamTimer)
		stage.GET("/progress", h.Progress)
		stage.PUT("/responsible", h.AssignResponsible)
		stage.DELETE("/responsible", h.RemoveResponsible)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceHandler) {
	service := rg.Group(PathOrders + "/:id" + PathService)
	{
		service.POST("/complete", h.Complete)
		service.POST("/reopen", h.Reopen)
		service.PUT("/responsible", h.AssignResponsible)
		service.DELETE("/responsible", h.RemoveResponsible)
		service.POST("/subtasks", h.AddSubtask)
		service.PATCH("/subtasks/:subtask_id", h.PatchSubtask)
		service.GET("/progress", h.Progress)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, orders *handlers.OrderHandler, employees *handlers.EmployeeHandler) {
	rg.GET(PathEmployees, employees.ListEmployees)
	rg.GET(PathSubtaskPresets, orders.ListPresets)
	rg.GET(PathPauseReasons, orders.PauseReasons)
}
