package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-hub/internal/app"
	"gamestore-hub/internal/transport/http/response"
)

type CatalogHandler struct {
	catalogService *app.CatalogService
}

func NewCatalogHandler(catalogService *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalogService.ListProducts(app.ListProductsInput{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort"),
	})

	response.OK(c, http.StatusOK, gin.H{
		"products": products,
	})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"categories": h.catalogService.ListCategories(),
	})
}
