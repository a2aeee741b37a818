package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"branchboard/internal/middleware"
	plannerHTTP "branchboard/internal/planner/delivery/http"
)

// setupPlannerDomain registers /api/v1/schedule, /settings, /tasks and /branches.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC, srv.dateParser)
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
