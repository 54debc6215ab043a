package main

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Vladimir-Maksimov/education/configs"
	"github.com/Vladimir-Maksimov/education/internal/auth"
	"github.com/Vladimir-Maksimov/education/internal/db"
	"github.com/Vladimir-Maksimov/education/internal/handlers"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadServerConfig()

	db.Init()

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	// ── session store ──
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("shopsess", store))

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/", handlers.ListProducts)
	r.GET("/product_list", handlers.ListProducts)
	r.GET("/product/:id/", handlers.ProductDetail)
	r.GET("/register/", handlers.ShowRegisterForm)
	r.POST("/register/", handlers.Register)
	r.GET("/login/", handlers.ShowLoginForm)
	r.POST("/login/", handlers.Login)
	r.GET("/logout/", handlers.Logout)

	// ── authenticated endpoints ──
	private := r.Group("/")
	private.Use(auth.RequireAuth())
	{
		private.GET("/account", handlers.Account)
		private.POST("/add_to_cart/:product_id/", handlers.AddToCart)
		private.POST("/remove_from_cart/:product_id", handlers.RemoveFromCart)
		private.GET("/cart", handlers.ViewCart)
		private.POST("/cart", handlers.UpdateCart)
		private.GET("/create_order", handlers.ShowOrderForm)
		private.POST("/create_order", handlers.CreateOrder)
		private.GET("/order_success/:order_id", handlers.OrderSuccess)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
