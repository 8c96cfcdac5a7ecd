package order

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Document is the wire order. Keys the core does not interpret round-trip untouched;
// Products, Coupons, StoreID, Address, Payments and Amounts have typed accessors.
type Document map[string]any

// Amounts is the typed view of the server-computed totals.
type Amounts struct {
	Menu       float64
	Discount   float64
	Surcharge  float64
	Adjustment float64
	Net        float64
	Tax        float64
	Bottle     float64
	Customer   float64
	Payment    float64
}

func NewDocument(address Address, language string) Document {
	if language == "" {
		language = "en"
	}
	return Document{
		"Address":               address.record(),
		"Coupons":               []any{},
		"CustomerID":            "",
		"Extension":             "",
		"OrderChannel":          "OLO",
		"OrderID":               "",
		"NoCombine":             true,
		"OrderMethod":           "Web",
		"OrderTaker":            nil,
		"Payments":              []any{},
		"Products":              []any{},
		"Market":                "",
		"Currency":              "",
		"ServiceMethod":         "Delivery",
		"Tags":                  map[string]any{},
		"Version":               "1.0",
		"SourceOrganizationURI": "order.dominos.com",
		"LanguageCode":          language,
		"Partners":              map[string]any{},
		"NewUser":               true,
		"metaData":              map[string]any{},
		"Amounts":               map[string]any{},
		"BusinessDate":          "",
		"EstimatedWaitMinutes":  "",
		"PriceOrderTime":        "",
		"AmountsBreakdown":      map[string]any{},
	}
}

func (d Document) list(key string) []any {
	l, _ := d[key].([]any)
	return l
}

func (d Document) Products() []any { return d.list("Products") }
func (d Document) Coupons() []any  { return d.list("Coupons") }
func (d Document) Payments() []any { return d.list("Payments") }

func (d Document) StoreID() string { return cast.ToString(d["StoreID"]) }

func (d Document) Address() (Address, error) {
	var a Address
	err := decode(d["Address"], &a)
	return a, err
}

func (d Document) Amounts() (Amounts, error) {
	var a Amounts
	err := decode(d["Amounts"], &a)
	return a, err
}

func decode(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// Validate checks the keys that must be filled before the document is sent.
func (d Document) Validate() error {
	if len(d.Products()) == 0 {
		return &ValidationError{Field: "Products"}
	}
	if d.StoreID() == "" {
		return &ValidationError{Field: "StoreID"}
	}
	addr, err := d.Address()
	if err != nil || addr.Street == "" && addr.City == "" && addr.Region == "" && addr.PostalCode == "" {
		return &ValidationError{Field: "Address"}
	}
	return nil
}

// Merge folds the non-empty scalar and object fields of a response order into the document.
// List fields are skipped so the locally built line items are kept.
func (d Document) Merge(resp map[string]any) {
	for key, value := range resp {
		if value == nil {
			continue
		}
		switch reflect.TypeOf(value).Kind() {
		case reflect.Slice, reflect.Array:
			continue
		case reflect.Map:
			if reflect.ValueOf(value).Len() == 0 {
				continue
			}
		case reflect.String:
			if value == "" {
				continue
			}
		}
		d[key] = value
	}
}
