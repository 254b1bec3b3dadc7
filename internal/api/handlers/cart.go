package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/storepro/storefront/internal/api/middleware"
	"github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	service "github.com/storepro/storefront/internal/services"
	"github.com/storepro/storefront/internal/utils"
	"github.com/storepro/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService    service.CartService
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(cartService service.CartService, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartService.Get())
	}
}

// POST /api/v1/cart/items — resolves the product through the catalog first,
// so the cart line carries a full product, then accumulates quantity.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			logger.Warn("Cannot add unknown product to cart",
				slog.Int64("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		cart := h.cartService.AddToCart(r.Context(), *product, req.Quantity)

		logger.Info("Item added to cart",
			slog.Int64("productId", req.ProductID),
			slog.Int("quantity", req.Quantity),
			slog.Float64("total", cart.Total))
		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateQuantityRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		cart := h.cartService.UpdateQuantity(r.Context(), req.ProductID, req.Quantity)

		logger.Info("Cart quantity updated",
			slog.Int64("productId", req.ProductID),
			slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid product id"))
			return
		}

		cart := h.cartService.RemoveFromCart(r.Context(), id)

		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cart := h.cartService.ClearCart(r.Context())

		middleware.LoggerFromContext(r.Context()).Info("Cart cleared")
		response.Success(w, http.StatusOK, cart)

	}
}
