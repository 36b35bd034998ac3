package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/auth"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/client"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/mailer"
)

const (
	clientTokenTTL = 24 * time.Hour
	adminTokenTTL  = 30 * time.Minute
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginHandler checks the credentials, then generates a one-time password,
// stores it with a short expiry and mails it. The token is only issued
// after the OTP round-trip.
// @Summary Start the login flow by e-mailing an OTP
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "client credentials"
// @Success 200 {object} map[string]string
// @Router /login [post]
func loginHandler(clients client.Repository, otps auth.OTPStore, mail mailer.Mailer, from string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		cl, err := clients.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Your Email is incorrect"})
			return
		}
		if !auth.CheckPassword(cl.PasswordHash, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect password"})
			return
		}

		code, err := auth.GenerateOTP()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if err := otps.Put(c.Request.Context(), cl.Email, code, auth.OTPTTL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}

		body, err := mailer.OTPBody(cl.FirstName, cl.LastName, code, auth.OTPTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if err := mail.Send(c.Request.Context(), mailer.Message{
			From:    from,
			To:      cl.Email,
			Subject: "Your OTP Code",
			HTML:    body,
		}); err != nil {
			log.Printf("[api] otp mail to %s: %v", cl.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email address"})
	}
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// verifyOTPHandler finishes the login flow: one matching code buys one
// token, the code is burnt either way. Admin accounts must use the admin
// login instead.
func verifyOTPHandler(clients client.Repository, otps auth.OTPStore, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		code, err := otps.Get(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, auth.ErrOTPNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "OTP not found for this email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if code != req.OTP {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
			return
		}
		_ = otps.Delete(c.Request.Context(), req.Email)

		cl, err := clients.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Your Email is incorrect"})
			return
		}
		if cl.Role == "admin" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access Denied"})
			return
		}

		token, err := issuer.Sign(cl.ID, cl.FirstName, cl.LastName, cl.Role, clientTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}

		if err := clients.TouchLogin(c.Request.Context(), cl.ID); err != nil {
			log.Printf("[api] touch login %s: %v", cl.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// adminLoginHandler issues a short-lived admin token. No OTP step here.
func adminLoginHandler(clients client.Repository, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
			return
		}

		cl, err := clients.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || cl.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access Denied: Admins only"})
			return
		}
		if !auth.CheckPassword(cl.PasswordHash, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := issuer.Sign(cl.ID, cl.FirstName, cl.LastName, cl.Role, adminTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
