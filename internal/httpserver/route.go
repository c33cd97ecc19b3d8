package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/gearshop/shop-backend/internal/middleware/auth"
)

type Deps struct {
	Products *ProductHTTP
	Auth     *AuthHTTP
	AuthMW   *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/register", d.Auth.Register)
	e.POST("/auth/login", d.Auth.Login)

	products := e.Group("/products")
	products.GET("", d.Products.GetProducts)
	products.GET("/:term", d.Products.GetProduct)

	admin := products.Group("", d.AuthMW.RequireRoles("admin"))
	admin.POST("", d.Products.CreateProduct)
	admin.PATCH("/:id", d.Products.PatchProduct)
	admin.DELETE("/:id", d.Products.DeleteProduct)
}
