package rest

import (
	"errors"
	"net/http"
	"strconv"

	"bulk-be/internal/logger"
	"bulk-be/internal/metrics"
	"bulk-be/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type productHandler struct {
	svc product.Service
	reg *metrics.Registry
}

// list serves the catalog, substituting the fixed sample set when the
// database fails or is empty so the storefront never sees an error page.
func (h *productHandler) list(c *gin.Context) {
	products, err := h.svc.GetAll(c.Request.Context())
	if err != nil || len(products) == 0 {
		if err != nil {
			logger.FromCtx(c.Request.Context()).Warn("serving fallback products", zap.Error(err))
		}
		h.reg.ProductFallbacks.Inc()
		markDataSource(c, DataSourceFallback)
		c.JSON(http.StatusOK, product.SampleProducts())
		return
	}

	markDataSource(c, DataSourceDatabase)
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), id)
	if errors.Is(err, product.ErrProductNotFound) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	markDataSource(c, DataSourceDatabase)
	c.JSON(http.StatusOK, p)
}

func (h *productHandler) create(c *gin.Context) {
	var input product.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), input)
	if errors.Is(err, product.ErrMissingFields) {
		respondError(c, http.StatusBadRequest, "Name, price, and category are required")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *productHandler) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var input product.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, input)
	if errors.Is(err, product.ErrMissingFields) {
		respondError(c, http.StatusBadRequest, "Name, price, and category are required")
		return
	}
	if errors.Is(err, product.ErrProductNotFound) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *productHandler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	err = h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, product.ErrProductNotFound) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
