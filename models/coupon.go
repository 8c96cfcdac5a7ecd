package models

import "github.com/shopspring/decimal"

type Coupon struct {
	Code        string
	Name        string
	Description string
	ImageCode   string
	Price       decimal.Decimal
	Tags        map[string]any
	Local       bool
	Bundle      bool
	Qty         int
}

func CouponFromRecord(r Record) (*Coupon, error) {
	if err := r.require("coupon", "Code", "ImageCode", "Description", "Name", "Price", "Tags", "Local", "Bundle"); err != nil {
		return nil, err
	}
	return &Coupon{
		Code:        r.str("Code"),
		Name:        r.str("Name"),
		Description: r.str("Description"),
		ImageCode:   r.str("ImageCode"),
		Price:       lenientDecimal(r["Price"]),
		Tags:        r.tags("Tags"),
		Local:       r.boolean("Local"),
		Bundle:      r.boolean("Bundle"),
		Qty:         1,
	}, nil
}

func (c *Coupon) Clone() *Coupon {
	cp := *c
	cp.Tags = copyMap(c.Tags)
	return &cp
}

func (c *Coupon) ToRecord() Record {
	return Record{
		"Code":        c.Code,
		"ImageCode":   c.ImageCode,
		"Description": c.Description,
		"Name":        c.Name,
		"Price":       c.Price.InexactFloat64(),
	}
}
