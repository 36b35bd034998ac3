package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/admin"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/auth"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/client"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/product"
)

func overviewHandler(reports admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := reports.Overview(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the overview data."})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

func salesReportHandler(reports admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			TimeRange string `json:"timeRange"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}
		if req.TimeRange == "" {
			req.TimeRange = "month"
		}

		rep, err := reports.Sales(c.Request.Context(), req.TimeRange)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the overview data."})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

func ordersReportHandler(reports admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := reports.Orders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the overview data."})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

func productsReportHandler(reports admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := reports.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the overview data."})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

func adminListProductsHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.ListWithStock(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
			return
		}
		if list == nil {
			list = []product.StockedProduct{}
		}
		c.JSON(http.StatusOK, list)
	}
}

type newProductRequest struct {
	Name      string `json:"name"`
	BrandName string `json:"brandName"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Size      string `json:"size"`
	Image     string `json:"image"`
	Desc      string `json:"desc"`
	Stock     int    `json:"stock"`
}

func adminAddProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		p := &product.Product{
			ID:        uuid.NewString(),
			Name:      req.Name,
			BrandName: req.BrandName,
			Price:     req.Price,
			Category:  req.Category,
			Size:      req.Size,
			Image:     req.Image,
			Desc:      req.Desc,
		}
		if err := products.Create(c.Request.Context(), p, req.Stock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added", "id": p.ID})
	}
}

func adminListUsersHandler(clients client.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := clients.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
			return
		}
		if list == nil {
			list = []client.Client{}
		}
		c.JSON(http.StatusOK, list)
	}
}

type newUserRequest struct {
	Email        string         `json:"email"`
	MobileNumber string         `json:"mobileNumber"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Gender       string         `json:"gender"`
	Address      addressPayload `json:"address"`
}

// adminAddUserHandler creates a client account with a default password
// and the form address seeded as its first delivery address.
func adminAddUserHandler(clients client.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		hash, err := auth.HashPassword("password123")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
			return
		}

		addr := req.Address.toAddress()
		addr.Name = req.FirstName + " " + req.LastName
		addr.Number = req.MobileNumber

		cl := &client.Client{
			ID:                uuid.NewString(),
			Email:             req.Email,
			PasswordHash:      hash,
			Role:              "client",
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Gender:            req.Gender,
			MobileNumber:      req.MobileNumber,
			DeliveryAddresses: []client.DeliveryAddress{addr},
		}
		if err := clients.Create(c.Request.Context(), cl); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User created", "id": cl.ID})
	}
}
