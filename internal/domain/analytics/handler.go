package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"villagemart/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// shopkeeperID reads the path id and checks it matches the
// authenticated shopkeeper: analytics are private to the shop.
func shopkeeperID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid shopkeeper ID")
		return 0, false
	}
	if c.GetInt64("user_id") != id {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Analytics are only visible to the shop owner")
		return 0, false
	}
	return id, true
}

func period(c *gin.Context) string {
	if p := c.Query("period"); p != "" {
		return p
	}
	return "30"
}

func (h *Handler) Overview(c *gin.Context) {
	id, ok := shopkeeperID(c)
	if !ok {
		return
	}

	out, err := h.service.Overview(c.Request.Context(), id, period(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load analytics overview")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) RevenueTrends(c *gin.Context) {
	id, ok := shopkeeperID(c)
	if !ok {
		return
	}

	points, err := h.service.RevenueTrends(c.Request.Context(), id, period(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load revenue trends")
		return
	}
	response.Success(c, http.StatusOK, points)
}

func (h *Handler) TopProducts(c *gin.Context) {
	id, ok := shopkeeperID(c)
	if !ok {
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}

	rows, err := h.service.TopProducts(c.Request.Context(), id, period(c), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load top products")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
