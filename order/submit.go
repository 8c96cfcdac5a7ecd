package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// StatusFailure is the status every endpoint reports when it rejects the order.
const StatusFailure = -1

// Transport performs one JSON POST and fails on non-2xx statuses. *client.Client implements it.
type Transport interface {
	PostJSON(ctx context.Context, url string, body any, out any) error
}

// Endpoints locates the three order endpoints. client.URLs implements it.
type Endpoints interface {
	PriceURL() string
	ValidateURL() string
	PlaceURL() string
}

// Response is the envelope every order endpoint answers with.
type Response struct {
	Order       map[string]any `json:"Order"`
	Status      int            `json:"Status"`
	StatusItems []any          `json:"StatusItems,omitempty"`
}

// Submit stamps the order identity into the document, checks it locally, and posts it.
// With merge set, the response order's non-empty non-list fields are folded back in.
// A failed local check never reaches the transport.
func (o *Order) Submit(ctx context.Context, url string, merge bool) (*Response, error) {
	o.Document["StoreID"] = o.StoreID
	o.Document["Email"] = o.Customer.Email
	o.Document["FirstName"] = o.Customer.FirstName
	o.Document["LastName"] = o.Customer.LastName
	o.Document["Phone"] = o.Customer.Phone
	o.Document["Address"] = o.Address.record()

	if err := o.Document.Validate(); err != nil {
		o.state = StateFailed
		return nil, err
	}

	var resp Response
	if err := o.transport.PostJSON(ctx, url, map[string]any{"Order": o.Document}, &resp); err != nil {
		o.state = StateFailed
		return nil, fmt.Errorf("submit order to %s: %w", url, err)
	}

	if merge {
		o.Document.Merge(resp.Order)
	}
	return &resp, nil
}

// PriceAndAttachPayment serializes the cart, prices it, and attaches a cash payment when
// card is nil or a card payment for the amount the store says the customer owes.
func (o *Order) PriceAndAttachPayment(ctx context.Context, card *Card) (*Response, error) {
	if o.state == StatePlaced {
		return nil, ErrOrderPlaced
	}

	// Start every submission cycle from the cart, not from a previous attempt's lines.
	o.Document["Products"] = []any{}
	o.Document["Coupons"] = []any{}
	o.Populate()

	resp, err := o.Submit(ctx, o.endpoints.PriceURL(), true)
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusFailure {
		o.state = StateFailed
		zap.L().Warn("price order rejected", zap.String("store_id", o.StoreID), zap.Any("status_items", resp.StatusItems))
		return resp, &RejectionError{Stage: "price", Response: resp}
	}

	if card == nil {
		o.Document["Payments"] = []any{cashPayment()}
	} else {
		amounts, err := o.Document.Amounts()
		if err != nil {
			o.state = StateFailed
			return resp, fmt.Errorf("read priced amounts: %w", err)
		}
		o.Document["Payments"] = []any{card.payment(amounts.Customer)}
	}

	o.state = StatePriced
	zap.L().Info("order priced", zap.String("store_id", o.StoreID), zap.Int("products", len(o.Document.Products())))
	return resp, nil
}

// Validate asks the store to validate the order. A rejection moves the order to Failed and
// returns false with a *RejectionError.
func (o *Order) Validate(ctx context.Context) (bool, error) {
	if o.state == StatePlaced {
		return false, ErrOrderPlaced
	}
	resp, err := o.Submit(ctx, o.endpoints.ValidateURL(), true)
	if err != nil {
		return false, err
	}
	if resp.Status == StatusFailure {
		o.state = StateFailed
		zap.L().Warn("validate order rejected", zap.String("store_id", o.StoreID), zap.Any("status_items", resp.StatusItems))
		return false, &RejectionError{Stage: "validate", Response: resp}
	}
	return true, nil
}

// Place prices the order, attaches the payment and places it. This is the step that moves money.
func (o *Order) Place(ctx context.Context, card *Card) (*Response, error) {
	if _, err := o.PriceAndAttachPayment(ctx, card); err != nil {
		return nil, err
	}

	resp, err := o.Submit(ctx, o.endpoints.PlaceURL(), false)
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusFailure {
		o.state = StateFailed
		zap.L().Warn("place order rejected", zap.String("store_id", o.StoreID), zap.Any("status_items", resp.StatusItems))
		return resp, &RejectionError{Stage: "place", Response: resp}
	}

	o.state = StatePlaced
	zap.L().Info("order placed", zap.String("store_id", o.StoreID), zap.String("email", o.Customer.Email))
	return resp, nil
}
