package models

import (
	"strings"
)

// Menu is the catalog of one store. It is read-only once built, so it can be shared by
// concurrent orders; every Order* method hands out private copies.
type Menu struct {
	Country string

	variants      map[string]*Variant
	toppings      map[string]map[string]*Topping
	sides         map[string]map[string]*Side
	products      map[string]*Product
	coupons       map[string]*Coupon
	preconfigured map[string]*PreconfiguredProduct

	productCodes       []string
	preconfiguredCodes []string
	productTypes       []string
}

// MenuFromDocument builds a Menu from a store menu document. Variants, toppings and sides are
// built before products so that every product reference is checked while building.
func MenuFromDocument(doc map[string]any, country string) (*Menu, error) {
	if err := Record(doc).require("menu", "Variants", "Toppings", "Sides", "Products", "Coupons", "PreconfiguredProducts"); err != nil {
		return nil, err
	}

	m := &Menu{
		Country:       country,
		variants:      map[string]*Variant{},
		products:      map[string]*Product{},
		coupons:       map[string]*Coupon{},
		preconfigured: map[string]*PreconfiguredProduct{},
	}

	for _, data := range asMap(doc["Variants"]) {
		v, err := VariantFromRecord(Record(asMap(data)))
		if err != nil {
			return nil, err
		}
		m.variants[v.Code] = v
	}

	var err error
	m.toppings, err = buildScoped(asMap(doc["Toppings"]), ToppingFromRecord, func(t *Topping) string { return t.Code })
	if err != nil {
		return nil, err
	}
	m.sides, err = buildScoped(asMap(doc["Sides"]), SideFromRecord, func(s *Side) string { return s.Code })
	if err != nil {
		return nil, err
	}

	for _, data := range asMap(doc["Products"]) {
		p, err := ProductFromRecord(Record(asMap(data)), m.variants, m.toppings, m.sides)
		if err != nil {
			return nil, err
		}
		m.products[p.Code] = p
	}

	for _, data := range asMap(doc["Coupons"]) {
		c, err := CouponFromRecord(Record(asMap(data)))
		if err != nil {
			return nil, err
		}
		m.coupons[c.Code] = c
	}

	for _, data := range asMap(doc["PreconfiguredProducts"]) {
		p, err := PreconfiguredFromRecord(Record(asMap(data)))
		if err != nil {
			return nil, err
		}
		m.preconfigured[p.Code] = p
	}

	m.productCodes = sortedKeys(m.products)
	m.preconfiguredCodes = sortedKeys(m.preconfigured)
	for _, code := range m.productCodes {
		pt := m.products[code].ProductType
		if !contains(m.productTypes, pt) {
			m.productTypes = append(m.productTypes, pt)
		}
	}
	return m, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// OrderProduct returns a customized copy of a product variant.
func (m *Menu) OrderProduct(productCode, variantCode string, toppings []ToppingRequest, qty int) (*Variant, error) {
	p, ok := m.products[productCode]
	if !ok {
		return nil, &UnknownCodeError{Kind: "product", Code: productCode}
	}
	if _, ok := m.variants[variantCode]; !ok {
		return nil, &UnknownCodeError{Kind: "variant", Code: variantCode}
	}
	return p.Order(variantCode, toppings, qty)
}

func (m *Menu) OrderPreconfigured(code string, qty int) (*PreconfiguredProduct, error) {
	p, ok := m.preconfigured[code]
	if !ok {
		return nil, &UnknownCodeError{Kind: "preconfigured product", Code: code}
	}
	return p.Order(qty), nil
}

// Coupon returns a copy of the catalog coupon.
func (m *Menu) Coupon(code string) (*Coupon, error) {
	c, ok := m.coupons[code]
	if !ok {
		return nil, &UnknownCodeError{Kind: "coupon", Code: code}
	}
	return c.Clone(), nil
}

// ProductTypes lists distinct product types in catalog order.
func (m *Menu) ProductTypes() []string {
	out := make([]string, len(m.productTypes))
	copy(out, m.productTypes)
	return out
}

// ProductsByType matches the product type case-insensitively.
func (m *Menu) ProductsByType(productType string) []*Product {
	var out []*Product
	for _, code := range m.productCodes {
		p := m.products[code]
		if strings.EqualFold(p.ProductType, productType) {
			out = append(out, p)
		}
	}
	return out
}

// Products lists every product in catalog order (ascending code).
func (m *Menu) Products() []*Product {
	out := make([]*Product, 0, len(m.productCodes))
	for _, code := range m.productCodes {
		out = append(out, m.products[code])
	}
	return out
}

func (m *Menu) PreconfiguredProducts() []*PreconfiguredProduct {
	out := make([]*PreconfiguredProduct, 0, len(m.preconfiguredCodes))
	for _, code := range m.preconfiguredCodes {
		out = append(out, m.preconfigured[code])
	}
	return out
}

func (m *Menu) Product(code string) (*Product, error) {
	p, ok := m.products[code]
	if !ok {
		return nil, &UnknownCodeError{Kind: "product", Code: code}
	}
	return p, nil
}

func (m *Menu) Variant(code string) (*Variant, error) {
	v, ok := m.variants[code]
	if !ok {
		return nil, &UnknownCodeError{Kind: "variant", Code: code}
	}
	return v, nil
}

// Topping looks a topping up within the product type's subset.
func (m *Menu) Topping(productType, code string) (*Topping, error) {
	t, ok := m.toppings[productType][code]
	if !ok {
		return nil, &UnknownCodeError{Kind: productType + " topping", Code: code}
	}
	return t, nil
}

func (m *Menu) Side(productType, code string) (*Side, error) {
	s, ok := m.sides[productType][code]
	if !ok {
		return nil, &UnknownCodeError{Kind: productType + " side", Code: code}
	}
	return s, nil
}

func (m *Menu) Coupons() []*Coupon {
	out := make([]*Coupon, 0, len(m.coupons))
	for _, code := range sortedKeys(m.coupons) {
		out = append(out, m.coupons[code])
	}
	return out
}
