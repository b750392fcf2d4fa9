package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type CartHandler struct {
	cart usecase.CartRepository
}

func NewCartHandler(cart usecase.CartRepository) *CartHandler {
	return &CartHandler{cart: cart}
}

// ServeHTTP dispatches /cart by method.
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Add(w, r)
	case http.MethodPut:
		h.Update(w, r)
	case http.MethodDelete:
		h.Remove(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// @Summary List cart items
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cart [get]
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.cart.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to fetch cart items", err.Error())
		return
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	JSON(w, http.StatusOK, map[string]any{"cartItems": items})
}

type addCartItemRequest struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

// @Summary Add item to cart
// @Description Creates a cart line for the book, or increments the existing one
// @Tags cart
// @Accept json
// @Produce json
// @Param item body addCartItemRequest true "Book reference and quantity"
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /cart [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.BookID == "" {
		JSONError(w, http.StatusBadRequest, "bookId is required", nil)
		return
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, created, err := h.cart.Add(r.Context(), req.BookID, quantity)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to add item to cart", err.Error())
		return
	}

	if created {
		JSON(w, http.StatusCreated, map[string]any{
			"message":  "Item added to cart successfully",
			"cartItem": item,
		})
		return
	}
	JSON(w, http.StatusOK, map[string]any{
		"message":  "Cart item updated successfully",
		"cartItem": item,
	})
}

type updateCartItemRequest struct {
	ID       string `json:"id"`
	BookID   string `json:"bookId"`
	Quantity *int   `json:"quantity"`
}

// @Summary Update cart item quantity
// @Description Sets the line's quantity; quantity 0 removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param item body updateCartItemRequest true "Selector and new quantity"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart [put]
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	sel := usecase.CartSelector{ID: req.ID, BookID: req.BookID}
	if sel.Empty() {
		JSONError(w, http.StatusBadRequest, "Either id or bookId is required", nil)
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		JSONError(w, http.StatusBadRequest, "Valid quantity is required", nil)
		return
	}

	if *req.Quantity == 0 {
		// Delete-on-zero answers 200 even when nothing matched.
		_, err := h.cart.Remove(r.Context(), sel)
		if err != nil && !errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusInternalServerError, "Failed to update cart item", err.Error())
			return
		}
		JSON(w, http.StatusOK, map[string]any{"message": "Cart item removed successfully"})
		return
	}

	item, err := h.cart.UpdateQuantity(r.Context(), sel, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Cart item not found", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "Failed to update cart item", err.Error())
		}
		return
	}
	JSON(w, http.StatusOK, map[string]any{
		"message":  "Cart item updated successfully",
		"cartItem": item,
	})
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param id query string false "Cart line id"
// @Param bookId query string false "Book id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := usecase.CartSelector{ID: q.Get("id"), BookID: q.Get("bookId")}
	if sel.Empty() {
		JSONError(w, http.StatusBadRequest, "Either id or bookId is required", nil)
		return
	}

	item, err := h.cart.Remove(r.Context(), sel)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Cart item not found", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "Failed to remove item from cart", err.Error())
		}
		return
	}
	JSON(w, http.StatusOK, map[string]any{
		"message":     "Item removed from cart successfully",
		"deletedItem": item,
	})
}
