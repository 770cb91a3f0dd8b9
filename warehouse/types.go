// Package warehouse models stock keeping with plain data types augmented at
// run time.
package warehouse

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"plaindata/options"
	"plaindata/plain"
)

// Address represents a physical or billing/shipping address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Location is a storage slot inside a warehouse.
type Location struct {
	Aisle int `json:"aisle"`
	Shelf int `json:"shelf"`
	Bin   int `json:"bin"`
}

// Product represents a sellable item in the store.
type Product struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"` // in cents (minor currency unit)
	Stock    int     `json:"stock"`
	IsActive bool    `json:"is_active"`
	Weight   float64 `json:"weight"` // in grams, useful for shipping
}

// Shipment is a batch of products leaving the warehouse.
type Shipment struct {
	ID        uint       `json:"id"`
	To        Address    `json:"to"`
	SKUs      []string   `json:"skus"`
	ShippedAt *time.Time `json:"shipped_at,omitempty"`
}

var (
	// Addresses are frozen values; the derived hash makes them usable as keys.
	Addresses = plain.MustAugment[Address](options.Default().With(options.FlagFrozen))

	// Locations order aisle first, then shelf and bin.
	Locations = plain.MustAugment[Location](
		options.Default().With(options.FlagOrder|options.FlagFrozen),
		plain.WithInvariant("Aisle > 0 && Shelf > 0 && Bin >= 0"),
	)

	// Products are mutable; equality is derived, hashing is disabled.
	Products = plain.MustAugment[Product](
		options.Default().With(options.FlagOrder),
		plain.WithInvariant("Price >= 0"),
		plain.WithInvariant("Stock >= 0"),
	)

	// Shipments keep the default flags.
	Shipments = plain.MustAugment[Shipment](options.Default())
)

// ErrOutOfStock is returned when picking more units than a product holds.
var ErrOutOfStock = errors.New("out of stock")

// Inventory tracks where products are stored. Slots are keyed by the
// derived hash of their location.
type Inventory struct {
	slots map[uint64][]slot
}

type slot struct {
	loc     *plain.Instance[Location]
	product *plain.Instance[Product]
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{slots: make(map[uint64][]slot)}
}

// Put stores p at loc, replacing whatever the slot held.
func (inv *Inventory) Put(loc *plain.Instance[Location], p *plain.Instance[Product]) error {
	key, err := loc.Hash()
	if err != nil {
		return err
	}

	bucket := inv.slots[key]
	for i := range bucket {
		if bucket[i].loc.Equal(loc) {
			bucket[i].product = p
			return nil
		}
	}

	inv.slots[key] = append(bucket, slot{loc: loc, product: p})

	return nil
}

// At returns the product stored at loc.
func (inv *Inventory) At(loc *plain.Instance[Location]) (*plain.Instance[Product], bool) {
	key, err := loc.Hash()
	if err != nil {
		return nil, false
	}

	for _, s := range inv.slots[key] {
		if s.loc.Equal(loc) {
			return s.product, true
		}
	}

	return nil, false
}

// Locations lists the occupied slots in order.
func (inv *Inventory) Locations() ([]*plain.Instance[Location], error) {
	var out []*plain.Instance[Location]

	for _, bucket := range inv.slots {
		for _, s := range bucket {
			out = append(out, s.loc)
		}
	}

	var sortErr error

	slices.SortFunc(out, func(a, b *plain.Instance[Location]) int {
		c, err := a.Compare(b)
		if err != nil && sortErr == nil {
			sortErr = err
		}

		return c
	})

	return out, sortErr
}

// Pick takes n units of the product at loc. The slot keeps a copy with the
// reduced stock, which is also returned.
func (inv *Inventory) Pick(loc *plain.Instance[Location], n int) (*plain.Instance[Product], error) {
	p, ok := inv.At(loc)
	if !ok {
		return nil, fmt.Errorf("nothing stored at %s", loc)
	}

	stock := p.Value().Stock
	if n > stock {
		return nil, fmt.Errorf("%w: %s has %d, want %d", ErrOutOfStock, p.Value().SKU, stock, n)
	}

	picked, err := p.Replace(map[string]any{"Stock": stock - n})
	if err != nil {
		return nil, err
	}

	if err := inv.Put(loc, picked); err != nil {
		return nil, err
	}

	return picked, nil
}
