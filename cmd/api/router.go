package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/VivekVaishnanai07/tea-of-assam-backend/docs"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/httpx"
)

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default(), httpx.RequestID(), httpx.Logger())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	api := r.Group("/api")

	api.POST("/login", loginHandler(d.clients, d.otps, d.mail, d.mailFrom))
	api.POST("/verify-otp", verifyOTPHandler(d.clients, d.otps, d.issuer))

	api.GET("/products", listProductsHandler(d.products, false))
	api.GET("/products/:id", getProductHandler(d.products))
	api.GET("/gift-products", listProductsHandler(d.products, true))
	api.GET("/gift-products/:id", getProductHandler(d.products))

	authed := api.Group("", httpx.RequireAuth(d.issuer, ""))
	{
		authed.GET("/clients/:id", getClientHandler(d.clients))
		authed.POST("/clients/add-deliveryAddress/:id", addAddressHandler(d.clients))
		authed.PATCH("/clients/update-deliveryAddress/:id", updateAddressHandler(d.clients))

		authed.GET("/wishlist/:client_id", listWishlistHandler(d.wishlists))
		authed.POST("/wishlist/add-wishlist", addWishlistHandler(d.wishlists))
		authed.DELETE("/wishlist/:client_id/:product_id", removeWishlistHandler(d.wishlists))

		authed.GET("/cart/:client_id", listCartHandler(d.carts))
		authed.POST("/cart/add-cart", addCartHandler(d.carts))
		authed.DELETE("/cart/:client_id/:product_id", removeCartHandler(d.carts))
		authed.PATCH("/cart/increase-quantity/:client_id/:product_id", increaseCartHandler(d.carts))
		authed.PATCH("/cart/decrease-quantity/:client_id/:product_id", decreaseCartHandler(d.carts))

		authed.GET("/orders/:id", listOrdersHandler(d.orders))
		authed.GET("/orders/track/:id", trackOrderHandler(d.orders))
		authed.POST("/orders/place-order", placeOrderHandler(d.orderSvc))
		authed.POST("/orders/order-payment", orderPaymentHandler(d.orderSvc))
	}

	api.POST("/admin/login", adminLoginHandler(d.clients, d.issuer))
	adm := api.Group("/admin", httpx.RequireAuth(d.issuer, "admin"))
	{
		adm.GET("/overview", overviewHandler(d.reports))
		adm.POST("/sales", salesReportHandler(d.reports))
		adm.GET("/orders", ordersReportHandler(d.reports))
		adm.GET("/products", productsReportHandler(d.reports))
		adm.GET("/products/getProducts", adminListProductsHandler(d.products))
		adm.POST("/products/addNew", adminAddProductHandler(d.products))
		adm.GET("/users/getUsers", adminListUsersHandler(d.clients))
		adm.POST("/users/addNew", adminAddUserHandler(d.clients))
	}

	return r
}
