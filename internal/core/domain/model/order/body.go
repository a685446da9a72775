package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrBodyIsNotConstructed is returned when a Body instance was not created
	// through the NewBody factory method.
	ErrBodyIsNotConstructed = errors.New("Body must be created via NewBody constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a single order line item. It is a value object: immutable after
// construction, with an exact decimal unit price.
type Item struct {
	id       int64
	name     string
	price    decimal.Decimal
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item.
// The id must be positive, the name non-empty, the unit price non-negative,
// and the quantity at least 1.
func NewItem(id int64, name string, price decimal.Decimal, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the menu item identifier.
func (i Item) ID() int64 {
	return i.id
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the exact decimal unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("item price is invalid",
			fmt.Errorf("%s is negative", price.String()))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

// Body is the mutable part of an order: the restaurant, the line items, and
// the total amount. Editing an order replaces its body wholesale while the
// identity, status, and creation time stay untouched.
//
// All amounts are exact decimals end to end; no floating-point rounding is
// introduced anywhere in the pipeline.
type Body struct {
	restaurantID int64
	items        []Item
	totalAmount  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewBody creates a validated order body.
// The restaurant id must be positive, at least one item is required, every
// item must be constructed via NewItem, and the total amount must be
// non-negative.
func NewBody(restaurantID int64, items []Item, totalAmount decimal.Decimal) (Body, error) {
	body := Body{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		body.setRestaurantID(restaurantID),
		body.setItems(items),
		body.setTotalAmount(totalAmount),
	); err != nil {
		return Body{}, err
	}

	return body, nil
}

// Validate ensures the body was created through the constructor.
func (b Body) Validate() error {
	return b.guard.Validate(ErrBodyIsNotConstructed)
}

// RestaurantID returns the restaurant the order is placed with.
func (b Body) RestaurantID() int64 {
	return b.restaurantID
}

// Items returns a copy of the order line items.
func (b Body) Items() []Item {
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return items
}

// TotalAmount returns the exact decimal order total.
func (b Body) TotalAmount() decimal.Decimal {
	return b.totalAmount
}

func (b *Body) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id is invalid",
			fmt.Errorf("%d is not greater than 0", restaurantID))
	}
	b.restaurantID = restaurantID
	return nil
}

func (b *Body) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	b.items = make([]Item, len(items))
	copy(b.items, items)
	return nil
}

func (b *Body) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%s is negative", totalAmount.String()))
	}
	b.totalAmount = totalAmount
	return nil
}
