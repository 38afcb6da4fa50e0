package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vasandree/hits-docker-practice/pkg/resp"
	"github.com/vasandree/hits-docker-practice/services"
)

type AnalyticsController struct {
	Collector *services.AnalyticsCollector
	Svc       *services.AnalyticsService
}

func NewAnalyticsController(collector *services.AnalyticsCollector, svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Collector: collector, Svc: svc}
}

// GET /analytics/summary
func (h *AnalyticsController) Summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /analytics/usage?top=5
func (h *AnalyticsController) Usage(c *gin.Context) {
	top := 5
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			resp.BadRequest(c, "top must be a positive integer")
			return
		}
		top = n
	}
	resp.OK(c, h.Collector.Usage(top))
}

// GET /analytics/errors
func (h *AnalyticsController) Errors(c *gin.Context) {
	resp.OK(c, h.Collector.Errors())
}
