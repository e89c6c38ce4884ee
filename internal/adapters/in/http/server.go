// Package http exposes the storefront use cases over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Item, error)
	}
	ChangeCartItemQuantityHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeCartItemQuantityCommand) (*cart.Item, error)
	}
	RemoveCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) error
	}
	ListMyOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderResponse, error)
	}
	ListAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListAllOrdersQuery) ([]queries.OrderResponse, error)
	}
	ListUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetailsResponse, error)
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) ([]queries.CartItemResponse, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	// Command handlers
	PlaceOrder             PlaceOrderHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	CancelOrder            CancelOrderHandler
	AddCartItem            AddCartItemHandler
	ChangeCartItemQuantity ChangeCartItemQuantityHandler
	RemoveCartItem         RemoveCartItemHandler

	// Query handlers
	ListMyOrders   ListMyOrdersHandler
	ListAllOrders  ListAllOrdersHandler
	ListUserOrders ListUserOrdersHandler
	GetOrder       GetOrderHandler
	GetCart        GetCartHandler
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	jwtSecret []byte
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// Tokens are verified with jwtSecret.
func NewServer(handlers Handlers, jwtSecret []byte, logger *slog.Logger) (*Server, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("http server: jwt secret is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		handlers:  handlers,
		jwtSecret: jwtSecret,
		logger:    logger.With("component", "http"),
	}, nil
}

// Register mounts the API, the health check and the API documentation on e.
func (s *Server) Register(ctx context.Context, e *echo.Echo) error {
	doc, err := loadOpenAPI(ctx)
	if err != nil {
		return err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", s.authenticate)

	api.POST("/order", s.PlaceOrder)
	api.GET("/order", s.ListMyOrders)
	api.GET("/order/index", s.ListAllOrders)
	api.GET("/order/users/:id", s.ListUserOrders)
	api.GET("/order/:id", s.GetOrder)
	api.PUT("/order/:id/cancel", s.CancelOrder)
	api.PUT("/order/:id/status", s.ChangeOrderStatus, validate)

	api.POST("/cart", s.AddCartItem, validate)
	api.GET("/cart", s.GetCart)
	api.PUT("/cart/:id", s.ChangeCartItemQuantity, validate)
	api.DELETE("/cart/:id", s.RemoveCartItem)

	return nil
}
