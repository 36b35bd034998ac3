package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/cart"
)

func listCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := carts.ListByClient(c.Request.Context(), c.Param("client_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching cart"})
			return
		}
		if items == nil {
			items = []cart.Item{}
		}
		c.JSON(http.StatusOK, items)
	}
}

type addCartRequest struct {
	ProductID string `json:"product_id"`
	ClientID  string `json:"client_id"`
	Quantity  int    `json:"quantity"`
}

// addCartHandler answers 201 for a new cart line and 200 when the line
// already existed and only its quantity grew.
func addCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		created, err := carts.Add(c.Request.Context(), req.ClientID, req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding product to cart"})
			return
		}
		if created {
			c.JSON(http.StatusCreated, gin.H{"message": "Product added to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product quantity updated in cart"})
	}
}

func removeCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := carts.Remove(c.Request.Context(), c.Param("client_id"), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing product from cart"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
	}
}

func increaseCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := carts.IncreaseQuantity(c.Request.Context(), c.Param("client_id"), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error increasing product quantity in cart"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product quantity increased in cart"})
	}
}

// decreaseCartHandler never drops a line below quantity 1; removing the
// line entirely is a separate call.
func decreaseCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := carts.DecreaseQuantity(c.Request.Context(), c.Param("client_id"), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error decreasing product quantity in cart"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart or quantity already at minimum"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product quantity decreased in cart"})
	}
}
