package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
)

// createOrderHandler godoc
// @Summary Create an order from the checkout payload
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "checkout payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /orders [post]
func createOrderHandler(svc *order.Service, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.ErrorDetails(c, http.StatusBadRequest, "Invalid request body", errDetails(dev, err), "")
			return
		}
		o, err := svc.Submit(c.Request.Context(), httpx.UserID(c), &req)
		if err != nil {
			writeOrderError(c, err, "Failed to create order", dev)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order":   o,
		})
	}
}

// listOrdersHandler godoc
// @Summary List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Security BearerAuth
// @Router /orders [get]
func listOrdersHandler(svc *order.Service, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			writeOrderError(c, err, "Failed to fetch orders", dev)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// getOrderHandler godoc
// @Summary Fetch one order with its items
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.Order
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /orders/{id} [get]
func getOrderHandler(svc *order.Service, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), httpx.UserID(c), c.Param("id"))
		if err != nil {
			writeOrderError(c, err, "Failed to fetch order", dev)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary Move an order to another status (admin)
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param status body order.UpdateStatusRequest true "new status"
// @Success 200 {object} order.Order
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /orders/{id} [patch]
func updateOrderStatusHandler(svc *order.Service, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "Invalid order status")
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			writeOrderError(c, err, "Failed to update order status", dev)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// writeOrderError translates service errors into the response envelope.
// Validation problems carry their own message; everything else collapses to
// the generic fallback with the upstream code passed through opaquely.
func writeOrderError(c *gin.Context, err error, fallback string, dev bool) {
	var verr *order.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Error(c, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, order.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrForbidden):
		httpx.Error(c, http.StatusForbidden, "Not authorized to view this order")
	default:
		httpx.ErrorDetails(c, http.StatusInternalServerError, fallback, errDetails(dev, err), pgCode(err))
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func errDetails(dev bool, err error) string {
	if !dev || err == nil {
		return ""
	}
	return err.Error()
}
