package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/product"
)

// listProductsHandler serves either the regular catalog or the gift
// catalog, depending on how it is mounted.
func listProductsHandler(products product.Repository, gift bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), gift)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
			return
		}
		if list == nil {
			list = []product.Product{}
		}
		c.JSON(http.StatusOK, list)
	}
}

func getProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
