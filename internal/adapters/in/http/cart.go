package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AddCartItem handles POST /api/cart.
func (s *Server) AddCartItem(c echo.Context) error {
	var body AddCartItemRequest
	if err := c.Bind(&body); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	productID, err := kernel.UUIDFromGoogle(body.ProductID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(actorFrom(c).UserID(), productID, body.Quantity)
	if err != nil {
		return s.respondError(c, err)
	}

	item, err := s.handlers.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, cartItemFromDomain(item))
}

// GetCart handles GET /api/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(actorFrom(c).UserID())
	if err != nil {
		return s.respondError(c, err)
	}

	items, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, cartFromResponses(items))
}

// ChangeCartItemQuantity handles PUT /api/cart/:id.
func (s *Server) ChangeCartItemQuantity(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var body ChangeCartItemQuantityRequest
	if err = c.Bind(&body); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewChangeCartItemQuantityCommand(actorFrom(c).UserID(), itemID, body.Quantity)
	if err != nil {
		return s.respondError(c, err)
	}

	item, err := s.handlers.ChangeCartItemQuantity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, cartItemFromDomain(item))
}

// RemoveCartItem handles DELETE /api/cart/:id.
func (s *Server) RemoveCartItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(actorFrom(c).UserID(), itemID)
	if err != nil {
		return s.respondError(c, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
