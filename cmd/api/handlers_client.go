package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/client"
)

func getClientHandler(clients client.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, err := clients.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
			return
		}
		c.JSON(http.StatusOK, cl)
	}
}

// addressPayload uses the storefront's address-form field names, which
// differ from the stored ones (mobile vs number, zip vs pinCode).
type addressPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Locality      string `json:"locality"`
	Type          string `json:"type"`
}

func (p addressPayload) toAddress() client.DeliveryAddress {
	return client.DeliveryAddress{
		ID:       p.ID,
		Name:     p.Name,
		Number:   p.Mobile,
		Street:   p.StreetAddress,
		City:     p.City,
		State:    p.State,
		PinCode:  p.Zip,
		Locality: p.Locality,
		Type:     p.Type,
	}
}

func addAddressHandler(clients client.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			NewAddress addressPayload `json:"newAddress"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		addr := body.NewAddress.toAddress()
		if err := clients.AddAddress(c.Request.Context(), c.Param("id"), &addr); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding delivery address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery address added", "id": addr.ID})
	}
}

func updateAddressHandler(clients client.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Address addressPayload `json:"address"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		addr := body.Address.toAddress()
		ok, err := clients.UpdateAddress(c.Request.Context(), c.Param("id"), &addr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating delivery address"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Delivery address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery address updated"})
	}
}
