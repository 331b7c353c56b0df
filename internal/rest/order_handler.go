package rest

import (
	"errors"
	"net/http"
	"strconv"

	"bulk-be/internal/logger"
	"bulk-be/internal/metrics"
	"bulk-be/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type orderHandler struct {
	svc order.Service
	reg *metrics.Registry
}

func (h *orderHandler) list(c *gin.Context) {
	orders, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Warn("serving fallback orders", zap.Error(err))
		h.reg.OrderFallbacks.Inc()
		markDataSource(c, DataSourceFallback)
		c.JSON(http.StatusOK, order.SampleOrders())
		return
	}

	markDataSource(c, DataSourceDatabase)
	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	o, err := h.svc.GetByID(c.Request.Context(), id)
	if errors.Is(err, order.ErrOrderNotFound) {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	markDataSource(c, DataSourceDatabase)
	c.JSON(http.StatusOK, o)
}

func (h *orderHandler) create(c *gin.Context) {
	var input order.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.svc.Create(c.Request.Context(), input)
	if errors.Is(err, order.ErrMissingFields) {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	h.reg.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, o)
}

func (h *orderHandler) updateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var input order.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), id, input.Status)
	if errors.Is(err, order.ErrInvalidStatus) {
		respondError(c, http.StatusBadRequest,
			"Invalid status. Must be one of: PENDING, IN_PROGRESS, DELIVERED, CANCELLED")
		return
	}
	if errors.Is(err, order.ErrOrderNotFound) {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, o)
}
