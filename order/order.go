// Package order assembles a cart of customized menu items into the vendor's order document
// and drives the price, validate and place exchanges.
package order

import (
	"fmt"

	"github.com/kaykidoutai/pizzapi2/models"
)

type State int

const (
	StateBuilding State = iota
	StatePriced
	StatePlaced
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StatePriced:
		return "priced"
	case StatePlaced:
		return "placed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Order is a cart for one store, customer and address. It is not safe for concurrent use.
// Items added to it are private copies handed out by the Menu.
type Order struct {
	StoreID  string
	Customer Customer
	Address  Address
	Menu     *models.Menu

	Variants      []*models.Variant
	Preconfigured []*models.PreconfiguredProduct
	Coupons       []*models.Coupon

	Document Document

	state     State
	transport Transport
	endpoints Endpoints
}

// New creates an empty order in the Building state.
func New(storeID string, customer Customer, address Address, menu *models.Menu, transport Transport, endpoints Endpoints) *Order {
	return &Order{
		StoreID:   storeID,
		Customer:  customer,
		Address:   address,
		Menu:      menu,
		Document:  NewDocument(address, "en"),
		state:     StateBuilding,
		transport: transport,
		endpoints: endpoints,
	}
}

func (o *Order) State() State { return o.state }

func (o *Order) mutable() error {
	if o.state == StatePlaced {
		return ErrOrderPlaced
	}
	o.state = StateBuilding
	return nil
}

// AddItem appends a customized variant or a preconfigured product.
func (o *Order) AddItem(item models.LineItem) error {
	if o.state == StatePlaced {
		return ErrOrderPlaced
	}
	switch it := item.(type) {
	case *models.Variant:
		if it == nil {
			return fmt.Errorf("%w: nil variant", ErrUnsupportedItemType)
		}
		o.Variants = append(o.Variants, it)
	case *models.PreconfiguredProduct:
		if it == nil {
			return fmt.Errorf("%w: nil preconfigured product", ErrUnsupportedItemType)
		}
		o.Preconfigured = append(o.Preconfigured, it)
	default:
		return fmt.Errorf("cannot add item %v of type %T: %w", item, item, ErrUnsupportedItemType)
	}
	return o.mutable()
}

func (o *Order) AddCoupon(c *models.Coupon) error {
	if o.state == StatePlaced {
		return ErrOrderPlaced
	}
	if c == nil {
		return fmt.Errorf("%w: nil coupon", ErrUnsupportedItemType)
	}
	if err := o.mutable(); err != nil {
		return err
	}
	o.Coupons = append(o.Coupons, c)
	return nil
}

// RemoveCoupon removes the given coupon instance; an equal copy does not match.
func (o *Order) RemoveCoupon(c *models.Coupon) error {
	if o.state == StatePlaced {
		return ErrOrderPlaced
	}
	if c == nil {
		return fmt.Errorf("%w: nil coupon", ErrCouponNotFound)
	}
	for i, existing := range o.Coupons {
		if existing == c {
			o.Coupons = append(o.Coupons[:i], o.Coupons[i+1:]...)
			return o.mutable()
		}
	}
	return fmt.Errorf("%w: %s", ErrCouponNotFound, c.Code)
}

// Populate appends every accumulated item and coupon to the document as wire records.
// Calling it twice appends the items twice.
func (o *Order) Populate() {
	products := o.Document.Products()
	id := len(products)
	for _, v := range o.Variants {
		id++
		products = append(products, lineRecord(v, id))
	}
	for _, p := range o.Preconfigured {
		id++
		products = append(products, lineRecord(p, id))
	}
	o.Document["Products"] = products

	coupons := o.Document.Coupons()
	id = len(coupons)
	for _, c := range o.Coupons {
		id++
		rec := c.ToRecord()
		rec["ID"] = id
		rec["isNew"] = true
		rec["Qty"] = 1
		rec["AutoRemove"] = false
		coupons = append(coupons, map[string]any(rec))
	}
	o.Document["Coupons"] = coupons
}

func lineRecord(item models.LineItem, id int) map[string]any {
	rec := item.ToRecord()
	rec["ID"] = id
	rec["isNew"] = true
	rec["AutoRemove"] = false
	return rec
}
