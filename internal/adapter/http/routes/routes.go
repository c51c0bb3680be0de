package routes

import (
	"fmt"
	"net/http"

	_ "retifica_os/docs"
	"retifica_os/internal/adapter/http/handlers"
	"retifica_os/internal/adapter/http/middleware"
	"retifica_os/internal/config"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Orders    *handlers.OrderHandler
	Stages    *handlers.StageHandler
	Services  *handlers.ServiceHandler
	Employees *handlers.EmployeeHandler
}

// NewRouter builds the engine: public ping and swagger, everything else
// behind identity resolution.
func NewRouter(cfg *config.Config, employees interfaces.IEmployeeRepository, h Handlers) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticate, err := middleware.Authenticate(cfg)
	if err != nil {
		return nil, fmt.Errorf("auth middleware: %w", err)
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("", authenticate, middleware.Session(employees))
	addOrderRoutes(secured, h.Orders)
	addStageRoutes(secured, h.Stages)
	addServiceRoutes(secured, h.Services)
	addCatalogRoutes(secured, h.Orders, h.Employees)
	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error("[http][router] recovered from panic",
			logger.Any("panic", recovered),
			logger.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
