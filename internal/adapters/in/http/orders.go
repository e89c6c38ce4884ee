package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/order - converts the caller's cart into an order.
// Both outcomes are 200: the new order, or a notice that the cart was empty.
func (s *Server) PlaceOrder(c echo.Context) error {
	cmd, err := commands.NewPlaceOrderCommand(actorFrom(c).UserID())
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	if result.CartIsEmpty() {
		return c.JSON(http.StatusOK, MessageResponse{Message: "Cart is empty"})
	}

	return c.JSON(http.StatusOK, placedOrderFromDomain(result.Order()))
}

// ListMyOrders handles GET /api/order - the caller's orders, most recent first.
func (s *Server) ListMyOrders(c echo.Context) error {
	skip, err := querySkip(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListMyOrdersQuery(actorFrom(c), skip)
	if err != nil {
		return s.respondError(c, err)
	}

	orders, err := s.handlers.ListMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromResponses(orders))
}

// ListAllOrders handles GET /api/order/index - every order, for administrators.
func (s *Server) ListAllOrders(c echo.Context) error {
	status, err := queryStatus(c)
	if err != nil {
		return s.respondError(c, err)
	}
	skip, err := querySkip(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListAllOrdersQuery(actorFrom(c), status, skip)
	if err != nil {
		return s.respondError(c, err)
	}

	orders, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromResponses(orders))
}

// ListUserOrders handles GET /api/order/users/:id - one user's orders, for administrators.
func (s *Server) ListUserOrders(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}
	status, err := queryStatus(c)
	if err != nil {
		return s.respondError(c, err)
	}
	skip, err := querySkip(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListUserOrdersQuery(actorFrom(c), userID, status, skip)
	if err != nil {
		return s.respondError(c, err)
	}

	orders, err := s.handlers.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrder handles GET /api/order/:id - an order with its products and history.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(actorFrom(c), orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderDetailsFromResponse(details))
}

// CancelOrder handles PUT /api/order/:id/cancel - the owner's cancellation.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	cancelled, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// ChangeOrderStatus handles PUT /api/order/:id/status - an administrative transition.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var body ChangeOrderStatusRequest
	if err = c.Bind(&body); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actorFrom(c), orderID, status)
	if err != nil {
		return s.respondError(c, err)
	}

	changed, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromDomain(changed))
}
