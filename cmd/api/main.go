package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/admin"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/auth"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/cart"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/client"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/config"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/database"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/mailer"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/order"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/product"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/tasks"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/wishlist"
)

// deps bundles everything the handlers need.
type deps struct {
	clients   client.Repository
	products  product.Repository
	carts     cart.Repository
	wishlists wishlist.Repository
	orders    order.Repository
	reports   admin.Repository

	orderSvc *order.Service
	issuer   *auth.TokenIssuer
	otps     auth.OTPStore
	mail     mailer.Mailer
	mailFrom string
}

// @title Tea of Assam API
// @version 1.0
// @description Storefront and admin dashboard backend.
// @BasePath /api
func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[api] postgres: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("[api] migrate: %v", err)
	}

	queue := tasks.New(4, 64)
	defer queue.Close()

	clients := client.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	carts := cart.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	mail := mailer.NewSMTP(cfg.SMTPAddr, cfg.SMTPUser, cfg.SMTPPass)

	d := deps{
		clients:   clients,
		products:  products,
		carts:     carts,
		wishlists: wishlist.NewPGRepo(pool),
		orders:    orders,
		reports:   admin.NewPGRepo(pool),
		orderSvc:  order.NewService(orders, carts, clients, products, mail, queue, cfg.MailFrom),
		issuer:    auth.NewTokenIssuer(cfg.JWTSecret),
		otps:      auth.NewRedisOTPStore(cfg.RedisAddr),
		mail:      mail,
		mailFrom:  cfg.MailFrom,
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(d),
	}

	go func() {
		log.Printf("[api] listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
}
