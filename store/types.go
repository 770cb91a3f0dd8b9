package store

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

//go:generate go run plaindata/cmd/plaindata-gen gen -m plaindata.yaml

// ErrEmptySKU is returned when a product is given an empty SKU.
var ErrEmptySKU = errors.New("sku must not be empty")

// Money is an amount in cents (lowest currency unit) to avoid floating-point errors.
type Money int64

// Compare orders amounts numerically.
func (m Money) Compare(o Money) int {
	return cmp.Compare(m, o)
}

// Product represents an individual item available for sale.
type Product struct {
	ID         int64     `json:"id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	PriceCents Money     `json:"price_cents"`
	Inventory  int       `json:"inventory_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate requires a SKU.
func (p *Product) Validate() error {
	if p.SKU == "" {
		return ErrEmptySKU
	}

	return nil
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	productID int64
	name      string
	quantity  int
	unitPrice Money
}

// Validate rejects line items that can't be shipped.
func (i OrderItem) Validate() error {
	if i.quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", i.quantity)
	}

	if i.unitPrice < 0 {
		return fmt.Errorf("unit price must not be negative, got %d", i.unitPrice)
	}

	return nil
}

// Subtotal is the price of the whole line.
func (i OrderItem) Subtotal() Money {
	return i.unitPrice * Money(i.quantity)
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Total      Money       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
