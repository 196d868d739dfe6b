package router

import (
	"timetable/internal/handler"
	"timetable/internal/middleware"

	"github.com/gin-gonic/gin"
)

type OpsRouter struct {
	userHandler *handler.OpsUserHandler
	opsAuth     *middleware.OpsAuth
}

func NewOpsRouter(
	userHandler *handler.OpsUserHandler,
	opsAuth *middleware.OpsAuth,
) *OpsRouter {
	return &OpsRouter{
		userHandler: userHandler,
		opsAuth:     opsAuth,
	}
}

func (or *OpsRouter) RegisterRoutes(r *gin.Engine) {
	ops := r.Group("/ops/users", or.opsAuth.Handler())
	{
		ops.GET("", or.userHandler.List)
		ops.GET("/:telegramID", or.userHandler.Get)
		ops.POST("/:telegramID/group", or.userHandler.AssignGroup)
	}
}
