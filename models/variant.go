package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Variant is a sellable unit of a Product, e.g. one size of a pizza.
// Menu variants are templates; ordering works on a Clone.
type Variant struct {
	Code                       string
	Name                       string
	ProductCode                string
	Price                      decimal.Decimal
	Surcharge                  decimal.Decimal
	SizeCode                   string
	FlavorCode                 string
	ImageCode                  string
	Local                      bool
	Prepared                   bool
	Tags                       map[string]any
	Pricing                    map[string]any
	AllowedCookingInstructions string
	DefaultCookingInstructions string
	// Options maps topping code to {coverage: amount}.
	Options map[string]map[string]string
	Qty     int
}

func VariantFromRecord(r Record) (*Variant, error) {
	if err := r.require("variant",
		"Code", "FlavorCode", "ImageCode", "Local", "Name", "Price", "ProductCode", "SizeCode",
		"Tags", "AllowedCookingInstructions", "DefaultCookingInstructions", "Prepared", "Pricing", "Surcharge",
	); err != nil {
		return nil, err
	}
	return &Variant{
		Code:                       r.str("Code"),
		Name:                       r.str("Name"),
		ProductCode:                r.str("ProductCode"),
		Price:                      lenientDecimal(r["Price"]),
		Surcharge:                  lenientDecimal(r["Surcharge"]),
		SizeCode:                   r.str("SizeCode"),
		FlavorCode:                 r.str("FlavorCode"),
		ImageCode:                  r.str("ImageCode"),
		Local:                      r.boolean("Local"),
		Prepared:                   r.boolean("Prepared"),
		Tags:                       r.tags("Tags"),
		Pricing:                    r.tags("Pricing"),
		AllowedCookingInstructions: r.str("AllowedCookingInstructions"),
		DefaultCookingInstructions: r.str("DefaultCookingInstructions"),
		Options:                    map[string]map[string]string{},
		Qty:                        1,
	}, nil
}

func (v *Variant) Clone() *Variant {
	c := *v
	c.Tags = copyMap(v.Tags)
	c.Pricing = copyMap(v.Pricing)
	c.Options = make(map[string]map[string]string, len(v.Options))
	for code, opt := range v.Options {
		o := make(map[string]string, len(opt))
		for k, val := range opt {
			o[k] = val
		}
		c.Options[code] = o
	}
	return &c
}

// AddTopping stamps a private copy of t with coverage and amount and records it in the
// variant's options. A later call for the same code replaces the earlier entry.
func (v *Variant) AddTopping(t *Topping, coverage Coverage, amount Amount) {
	ct := t.Clone()
	ct.Coverage = coverage
	ct.Amount = amount
	if v.Options == nil {
		v.Options = map[string]map[string]string{}
	}
	v.Options[ct.Code] = ct.Option()
}

func (v *Variant) Summary() string {
	return fmt.Sprintf("%s: $%s", v.Name, v.Price.StringFixed(2))
}

func (v *Variant) ToRecord() Record {
	options := make(map[string]any, len(v.Options))
	for code, opt := range v.Options {
		o := make(map[string]any, len(opt))
		for k, val := range opt {
			o[k] = val
		}
		options[code] = o
	}
	return Record{
		"Code":                       v.Code,
		"FlavorCode":                 v.FlavorCode,
		"ImageCode":                  v.ImageCode,
		"Local":                      v.Local,
		"Name":                       v.Name,
		"Price":                      v.Price.InexactFloat64(),
		"ProductCode":                v.ProductCode,
		"SizeCode":                   v.SizeCode,
		"Tags":                       copyMap(v.Tags),
		"AllowedCookingInstructions": v.AllowedCookingInstructions,
		"DefaultCookingInstructions": v.DefaultCookingInstructions,
		"Prepared":                   v.Prepared,
		"Pricing":                    copyMap(v.Pricing),
		"Surcharge":                  v.Surcharge.InexactFloat64(),
		"Options":                    options,
		"Qty":                        v.Qty,
	}
}

func (*Variant) lineItem() {}
