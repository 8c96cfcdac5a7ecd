package models

import (
	"fmt"
	"sort"
	"strings"
)

// ToppingRequest asks for one topping on an ordered variant.
type ToppingRequest struct {
	Code     string
	Coverage Coverage
	Amount   Amount
}

// Product groups variants with the toppings and sides valid for its product type.
type Product struct {
	Code        string
	Name        string
	Description string
	ImageCode   string
	Local       bool
	ProductType string
	Tags        map[string]any

	Variants          map[string]*Variant
	AvailableToppings map[string]*Topping
	DefaultToppings   map[string]*Topping
	AvailableSides    map[string]*Side
	DefaultSides      map[string]*Side

	// Raw "code=value" lists as received; the value half is not interpreted.
	RawAvailableToppings string
	RawDefaultToppings   string
	RawAvailableSides    string
	RawDefaultSides      string

	variantCodes []string
}

// ProductFromRecord resolves every variant, topping and side code the record names against the
// already built collections. Toppings and sides are looked up in the product type's subset only.
func ProductFromRecord(
	r Record,
	variants map[string]*Variant,
	toppings map[string]map[string]*Topping,
	sides map[string]map[string]*Side,
) (*Product, error) {
	if err := r.require("product",
		"Code", "Name", "Description", "ImageCode", "Local", "ProductType", "Tags", "Variants",
		"AvailableToppings", "DefaultToppings", "AvailableSides", "DefaultSides",
	); err != nil {
		return nil, err
	}

	p := &Product{
		Code:                 r.str("Code"),
		Name:                 r.str("Name"),
		Description:          r.str("Description"),
		ImageCode:            r.str("ImageCode"),
		Local:                r.boolean("Local"),
		ProductType:          r.str("ProductType"),
		Tags:                 r.tags("Tags"),
		Variants:             map[string]*Variant{},
		RawAvailableToppings: r.str("AvailableToppings"),
		RawDefaultToppings:   r.str("DefaultToppings"),
		RawAvailableSides:    r.str("AvailableSides"),
		RawDefaultSides:      r.str("DefaultSides"),
	}

	for _, raw := range r.list("Variants") {
		code := fmt.Sprint(raw)
		v, ok := variants[code]
		if !ok {
			return nil, &InvalidReferenceError{Product: p.Code, Kind: "variant", Code: code}
		}
		p.Variants[code] = v
		p.variantCodes = append(p.variantCodes, code)
	}

	var err error
	scopedToppings := toppings[p.ProductType]
	if p.AvailableToppings, err = resolve(p.Code, "topping", p.RawAvailableToppings, scopedToppings); err != nil {
		return nil, err
	}
	if p.DefaultToppings, err = resolve(p.Code, "topping", p.RawDefaultToppings, scopedToppings); err != nil {
		return nil, err
	}
	scopedSides := sides[p.ProductType]
	if p.AvailableSides, err = resolve(p.Code, "side", p.RawAvailableSides, scopedSides); err != nil {
		return nil, err
	}
	if p.DefaultSides, err = resolve(p.Code, "side", p.RawDefaultSides, scopedSides); err != nil {
		return nil, err
	}
	return p, nil
}

func resolve[T any](product, kind, raw string, scoped map[string]*T) (map[string]*T, error) {
	out := map[string]*T{}
	for _, code := range ParseCodes(raw) {
		item, ok := scoped[code]
		if !ok {
			return nil, &InvalidReferenceError{Product: product, Kind: kind, Code: code}
		}
		out[code] = item
	}
	return out, nil
}

// VariantCodes lists the product's variants in source order.
func (p *Product) VariantCodes() []string {
	out := make([]string, len(p.variantCodes))
	copy(out, p.variantCodes)
	return out
}

// Order returns a customized copy of the product's own variant template. The template,
// the catalog toppings and the product are left untouched, including on error.
func (p *Product) Order(variantCode string, toppings []ToppingRequest, qty int) (*Variant, error) {
	tmpl, ok := p.Variants[variantCode]
	if !ok {
		return nil, &UnknownCodeError{Kind: "variant", Code: variantCode}
	}
	for _, req := range toppings {
		if _, ok := p.AvailableToppings[req.Code]; !ok {
			return nil, fmt.Errorf("%w: %s is not available for %s (%s)", ErrToppingUnavailable, req.Code, p.Name, p.Code)
		}
		if !req.Coverage.Valid() || !req.Amount.Valid() {
			return nil, fmt.Errorf("%w: %s with coverage %q and amount %d", ErrInvalidTopping, req.Code, req.Coverage, req.Amount)
		}
	}

	v := tmpl.Clone()
	v.Qty = qty
	for _, req := range toppings {
		v.AddTopping(p.AvailableToppings[req.Code], req.Coverage, req.Amount)
	}
	return v, nil
}

func (p *Product) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: (%s) %s\n", p.Name, p.ProductType, p.Description)
	for _, code := range p.variantCodes {
		fmt.Fprintf(&b, "\t%s\n", p.Variants[code].Summary())
	}
	return b.String()
}

func (p *Product) ToRecord() Record {
	return Record{
		"Code":              p.Code,
		"Name":              p.Name,
		"Description":       p.Description,
		"ImageCode":         p.ImageCode,
		"Local":             p.Local,
		"ProductType":       p.ProductType,
		"Tags":              copyMap(p.Tags),
		"Variants":          p.VariantCodes(),
		"AvailableToppings": p.RawAvailableToppings,
		"DefaultToppings":   p.RawDefaultToppings,
		"AvailableSides":    p.RawAvailableSides,
		"DefaultSides":      p.RawDefaultSides,
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
