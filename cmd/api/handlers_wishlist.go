package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/wishlist"
)

func listWishlistHandler(wishlists wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := wishlists.ListByClient(c.Request.Context(), c.Param("client_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching wishlist"})
			return
		}
		if items == nil {
			items = []wishlist.Item{}
		}
		c.JSON(http.StatusOK, items)
	}
}

type addWishlistRequest struct {
	ProductID string `json:"product_id"`
	ClientID  string `json:"client_id"`
}

func addWishlistHandler(wishlists wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		err := wishlists.Add(c.Request.Context(), req.ClientID, req.ProductID)
		if errors.Is(err, wishlist.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "This product is already in your wishlist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding product to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added to wishlist"})
	}
}

func removeWishlistHandler(wishlists wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := wishlists.Remove(c.Request.Context(), c.Param("client_id"), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing product from wishlist"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist"})
	}
}
