package order

import (
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/kaykidoutai/pizzapi2/models"
)

// Record snapshots the order for the history store under a fresh reference.
func (o *Order) Record() (*models.OrderRecord, error) {
	amounts, err := o.Document.Amounts()
	if err != nil {
		return nil, fmt.Errorf("read order amounts: %w", err)
	}

	codes := make(pq.StringArray, 0, len(o.Coupons))
	for _, c := range o.Coupons {
		codes = append(codes, c.Code)
	}

	rec := &models.OrderRecord{
		Reference:     uuid.NewString(),
		StoreID:       o.StoreID,
		StoreOrderID:  cast.ToString(o.Document["OrderID"]),
		Status:        o.state.String(),
		CustomerEmail: o.Customer.Email,
		Total:         decimal.NewFromFloat(amounts.Customer),
		CouponCodes:   codes,
	}
	for _, v := range o.Variants {
		options, _ := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(v.Options)
		rec.Lines = append(rec.Lines, models.OrderLine{Code: v.Code, Name: v.Name, Qty: v.Qty, Options: options})
	}
	for _, p := range o.Preconfigured {
		options, ok := p.Options.(string)
		if !ok {
			options, _ = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(p.Options)
		}
		rec.Lines = append(rec.Lines, models.OrderLine{Code: p.Code, Name: p.Name, Qty: p.Qty, Options: options})
	}
	return rec, nil
}
