package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/order"
)

func listOrdersHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByClient(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
			return
		}
		if list == nil {
			list = []order.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}

func trackOrderHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// placeOrderHandler persists the order and answers as soon as it is
// durable; the follow-up side effects run in the background.
// @Summary Place an order
// @Accept json
// @Produce json
// @Param order body order.CheckoutRequest true "checkout payload"
// @Success 201 {object} map[string]string
// @Router /orders/place-order [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		orderID, err := svc.Place(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error placing order"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"orderId": orderID,
		})
	}
}

// orderPaymentHandler updates the payment fields of one order. The order
// must belong to the client named in the payload; a mismatch on either id
// is a 404, not an error.
func orderPaymentHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PaymentUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		err := svc.UpdatePayment(c.Request.Context(), req)
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found or already updated"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order payment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order payment updated successfully"})
	}
}
