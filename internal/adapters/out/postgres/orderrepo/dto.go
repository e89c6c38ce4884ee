// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite index serves the per-user, most-recent-first listings.
type OrderDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	NetAmount       decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Address         *string           `gorm:"type:text"`
	Status          string            `gorm:"type:varchar(32);not null;index"`
	CreatedAt       time.Time         `gorm:"not null;index;index:idx_orders_user_created,priority:2"`
	StatusChangedAt time.Time         `gorm:"not null"`
	Products        []OrderProductDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events          []OrderEventDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderProductDTO is one order line. Position keeps the cart's order of lines.
type OrderProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null;check:chk_order_products_quantity,quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (OrderProductDTO) TableName() string {
	return "order_products"
}

// OrderEventDTO is one append-only entry of an order's status history.
// Seq is assigned by the database on insert and orders the history of an
// order; transitions clamped to the previous change share CreatedAt.
type OrderEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;not null;index:idx_order_events_order_seq,priority:2"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_order_events_order_seq,priority:1"`
	Status    string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order aggregate to its header and line rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := make([]OrderProductDTO, 0, len(aggregate.Lines()))
	for position, line := range aggregate.Lines() {
		products = append(products, OrderProductDTO{
			ID:        line.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			Position:  position,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		NetAmount:       aggregate.NetAmount().Decimal(),
		Address:         aggregate.Address(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		StatusChangedAt: aggregate.StatusChangedAt(),
		Products:        products,
	}
}

// eventsFromDomain converts the not yet persisted events of an order.
func eventsFromDomain(events []order.Event) []OrderEventDTO {
	dtos := make([]OrderEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, OrderEventDTO{
			ID:        event.ID().Bytes(),
			OrderID:   event.OrderID().Bytes(),
			Status:    event.Status().String(),
			CreatedAt: event.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts database rows to an order aggregate using RestoreOrder.
// Lines are restored from dto.Products, which is empty for header-only loads.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	netAmount, err := kernel.NewMoney(dto.NetAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Products))
	for _, product := range dto.Products {
		line, lineErr := lineToDomain(product)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, userID, netAmount, dto.Address, status, dto.CreatedAt, dto.StatusChangedAt, lines)
}

func lineToDomain(dto OrderProductDTO) (order.Line, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.Line{}, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.Line{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(id, productID, dto.Quantity, unitPrice)
}
