package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Request bodies.
type (
	AddCartItemRequest struct {
		ProductID uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
	}

	ChangeCartItemQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	ChangeOrderStatusRequest struct {
		Status string `json:"status"`
	}
)

// MessageResponse carries a notice instead of a resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// Order represents an order header. Amounts are decimal strings with two
// fractional digits.
type Order struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	NetAmount       string    `json:"netAmount"`
	Address         *string   `json:"address"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	StatusChangedAt time.Time `json:"statusChangedAt"`
}

type OrderProduct struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unitPrice"`
}

type OrderEvent struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderDetails is an order with its products and, when known, its status history.
type OrderDetails struct {
	Order
	Products []OrderProduct `json:"products"`
	Events   []OrderEvent   `json:"events,omitempty"`
}

type CartProduct struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CartItem struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"productId"`
	Quantity  int          `json:"quantity"`
	CreatedAt time.Time    `json:"createdAt"`
	Product   *CartProduct `json:"product"`
}

func orderFromResponse(resp queries.OrderResponse) Order {
	return Order{
		ID:              resp.ID.Bytes(),
		UserID:          resp.UserID.Bytes(),
		NetAmount:       resp.NetAmount.String(),
		Address:         resp.Address,
		Status:          resp.Status.String(),
		CreatedAt:       resp.CreatedAt,
		StatusChangedAt: resp.StatusChangedAt,
	}
}

func ordersFromResponses(responses []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(responses))
	for _, resp := range responses {
		orders = append(orders, orderFromResponse(resp))
	}
	return orders
}

func orderDetailsFromResponse(resp queries.OrderDetailsResponse) OrderDetails {
	details := OrderDetails{
		Order:    orderFromResponse(resp.OrderResponse),
		Products: make([]OrderProduct, 0, len(resp.Lines)),
		Events:   make([]OrderEvent, 0, len(resp.Events)),
	}
	for _, line := range resp.Lines {
		details.Products = append(details.Products, OrderProduct{
			ID:        line.ID.Bytes(),
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
		})
	}
	for _, event := range resp.Events {
		details.Events = append(details.Events, OrderEvent{
			ID:        event.ID.Bytes(),
			Status:    event.Status.String(),
			CreatedAt: event.CreatedAt,
		})
	}
	return details
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:              o.ID().Bytes(),
		UserID:          o.UserID().Bytes(),
		NetAmount:       o.NetAmount().String(),
		Address:         o.Address(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		StatusChangedAt: o.StatusChangedAt(),
	}
}

// placedOrderFromDomain renders a new order with its products.
func placedOrderFromDomain(o *order.Order) OrderDetails {
	details := OrderDetails{
		Order:    orderFromDomain(o),
		Products: make([]OrderProduct, 0, len(o.Lines())),
	}
	for _, line := range o.Lines() {
		details.Products = append(details.Products, OrderProduct{
			ID:        line.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().String(),
		})
	}
	return details
}

func cartItemFromDomain(item *cart.Item) CartItem {
	return CartItem{
		ID:        item.ID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		CreatedAt: item.CreatedAt(),
	}
}

func cartFromResponses(responses []queries.CartItemResponse) []CartItem {
	items := make([]CartItem, 0, len(responses))
	for _, resp := range responses {
		item := CartItem{
			ID:        resp.ID.Bytes(),
			ProductID: resp.ProductID.Bytes(),
			Quantity:  resp.Quantity,
			CreatedAt: resp.CreatedAt,
		}
		if resp.Product != nil {
			item.Product = &CartProduct{Name: resp.Product.Name, Price: resp.Product.Price.String()}
		}
		items = append(items, item)
	}
	return items
}
