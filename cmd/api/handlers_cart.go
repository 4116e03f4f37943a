package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/cart"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
)

// getCartHandler godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {array} cart.Item
// @Security BearerAuth
// @Router /cart [get]
func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if items == nil {
			items = []cart.Item{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// addCartItemHandler godoc
// @Summary Add a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body cart.AddItemRequest true "line to add"
// @Success 201 {array} cart.Item
// @Failure 400 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /cart/items [post]
func addCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			httpx.Error(c, http.StatusBadRequest, "product_id is required")
			return
		}
		if req.Quantity <= 0 {
			httpx.Error(c, http.StatusBadRequest, "quantity must be a positive integer")
			return
		}
		unit := req.QuantityUnit
		if unit == "" {
			unit = order.DefaultQuantityUnit
		}
		uid := httpx.UserID(c)
		if err := repo.Add(c.Request.Context(), uid, req.ProductID, req.Quantity, unit); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to add to cart")
			return
		}
		items, err := repo.List(c.Request.Context(), uid)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusCreated, items)
	}
}

// setCartQuantityHandler godoc
// @Summary Change a cart line's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "product id"
// @Param quantity body cart.SetQuantityRequest true "new quantity"
// @Success 200 {array} cart.Item
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /cart/items/{productId} [put]
func setCartQuantityHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
			httpx.Error(c, http.StatusBadRequest, "quantity must be a positive integer")
			return
		}
		uid := httpx.UserID(c)
		err := repo.SetQuantity(c.Request.Context(), uid, c.Param("productId"), req.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrNotFound) {
				httpx.Error(c, http.StatusNotFound, "Cart item not found")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "Failed to update cart")
			return
		}
		items, err := repo.List(c.Request.Context(), uid)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// removeCartItemHandler godoc
// @Summary Remove a line from the cart
// @Tags cart
// @Param productId path string true "product id"
// @Success 204
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /cart/items/{productId} [delete]
func removeCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Remove(c.Request.Context(), httpx.UserID(c), c.Param("productId"))
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to update cart")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Cart item not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// clearCartHandler godoc
// @Summary Empty the caller's cart
// @Tags cart
// @Success 204
// @Security BearerAuth
// @Router /cart [delete]
func clearCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Clear(c.Request.Context(), httpx.UserID(c)); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
