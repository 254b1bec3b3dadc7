package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/storepro/storefront/internal/api/middleware"
	"github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	service "github.com/storepro/storefront/internal/services"
	"github.com/storepro/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/v1/products?category=&minPrice=&maxPrice=&sort=&search=&page=
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		criteria := models.ParseFilterCriteria(r.URL.Query())

		page, err := h.catalogService.Browse(r.Context(), criteria)
		if err != nil {
			logger.Error("Failed to browse catalog", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog page resolved",
			slog.Int("page", page.Page),
			slog.Int("total", page.Total),
			slog.Int("totalPages", page.TotalPages))
		response.Success(w, http.StatusOK, page)

	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Product lookup failed", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.Categories(r.Context())
		if err != nil {
			logger.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, categories)

	}
}
