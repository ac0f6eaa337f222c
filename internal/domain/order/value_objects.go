package order

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrNoItems         = errors.New("order must contain at least one item")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// LineItem snapshots a menu item at order time. Quantity and unit price are
// frozen here so later menu edits never change a placed order's total.
type LineItem struct {
	menuItemID uuid.UUID
	itemName   string
	quantity   int32
	unitPrice  Money
	notes      *string
}

func NewLineItem(menuItemID uuid.UUID, itemName string, quantity int32, unitPrice Money, notes *string) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.Cents() < 0 {
		return LineItem{}, ErrNegativePrice
	}
	return LineItem{
		menuItemID: menuItemID,
		itemName:   itemName,
		quantity:   quantity,
		unitPrice:  unitPrice,
		notes:      notes,
	}, nil
}

func (li LineItem) MenuItemID() uuid.UUID { return li.menuItemID }
func (li LineItem) ItemName() string      { return li.itemName }
func (li LineItem) Quantity() int32       { return li.quantity }
func (li LineItem) UnitPrice() Money      { return li.unitPrice }
func (li LineItem) Notes() *string        { return li.notes }

func (li LineItem) Subtotal() Money {
	return NewMoney(li.unitPrice.Cents() * int64(li.quantity))
}

// NewOrderNumber builds a human-facing order reference, e.g. ORD-2026-0417.
func NewOrderNumber(now time.Time) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Timestamp fallback keeps numbers unique enough for display purposes.
		return fmt.Sprintf("ORD-%d-%04d", now.Year(), now.UnixNano()%10000)
	}
	n := binary.BigEndian.Uint64(buf[:]) % 10000
	return fmt.Sprintf("ORD-%d-%04d", now.Year(), n)
}
