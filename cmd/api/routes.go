package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dheeraj4092/Bhuktafoods-Backend/docs"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/auth"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/cart"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/config"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/product"
)

type deps struct {
	orders   *order.Service
	products product.Repository
	carts    cart.Repository
	users    auth.Repository
}

func newRouter(cfg config.Config, d deps) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestID())
	r.Use(httpx.Logger())
	r.Use(httpx.CORS(cfg.AllowedOrigins, cfg.Production()))
	r.Use(httpx.Deadline(cfg.RequestTimeout))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Snackolicious Delights API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secret := []byte(cfg.JWTSecret)
	dev := !cfg.Production()
	api := r.Group("/api")

	api.POST("/auth/register", registerHandler(d.users, secret, cfg.TokenTTL))
	api.POST("/auth/login", loginHandler(d.users, secret, cfg.TokenTTL))
	api.GET("/auth/me", httpx.RequireUser(secret), meHandler(d.users))

	api.GET("/products", listProductsHandler(d.products))
	api.GET("/products/:id", getProductHandler(d.products))
	admin := api.Group("", httpx.RequireUser(secret), httpx.RequireAdmin())
	admin.POST("/products", createProductHandler(d.products))
	admin.PUT("/products/:id", updateProductHandler(d.products))
	admin.DELETE("/products/:id", deleteProductHandler(d.products))

	user := api.Group("", httpx.RequireUser(secret))
	user.GET("/cart", getCartHandler(d.carts))
	user.DELETE("/cart", clearCartHandler(d.carts))
	user.POST("/cart/items", addCartItemHandler(d.carts))
	user.PUT("/cart/items/:productId", setCartQuantityHandler(d.carts))
	user.DELETE("/cart/items/:productId", removeCartItemHandler(d.carts))

	user.POST("/orders", createOrderHandler(d.orders, dev))
	user.GET("/orders", listOrdersHandler(d.orders, dev))
	user.GET("/orders/:id", getOrderHandler(d.orders, dev))
	admin.PATCH("/orders/:id", updateOrderStatusHandler(d.orders, dev))

	return r
}
