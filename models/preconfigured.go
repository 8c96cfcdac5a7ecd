package models

// PreconfiguredProduct is a fixed bundle. It can only be ordered with a quantity.
type PreconfiguredProduct struct {
	Code                  string
	Name                  string
	Description           string
	Size                  string
	Options               any
	ReferencedProductCode string
	Tags                  map[string]any
	Qty                   int
}

func PreconfiguredFromRecord(r Record) (*PreconfiguredProduct, error) {
	if err := r.require("preconfigured product", "Code", "Description", "Name", "Size", "Options", "Tags"); err != nil {
		return nil, err
	}
	return &PreconfiguredProduct{
		Code:                  r.str("Code"),
		Name:                  r.str("Name"),
		Description:           r.str("Description"),
		Size:                  r.str("Size"),
		Options:               copyOptions(r["Options"]),
		ReferencedProductCode: r.str("ReferencedProductCode"),
		Tags:                  r.tags("Tags"),
		Qty:                   1,
	}, nil
}

// Options arrive either as a vendor option string or as a nested object.
func copyOptions(v any) any {
	switch o := v.(type) {
	case map[string]any:
		return copyMap(o)
	case []any:
		return copyList(o)
	default:
		return o
	}
}

func (p *PreconfiguredProduct) Clone() *PreconfiguredProduct {
	c := *p
	c.Options = copyOptions(p.Options)
	c.Tags = copyMap(p.Tags)
	return &c
}

// Order returns a copy stamped with qty.
func (p *PreconfiguredProduct) Order(qty int) *PreconfiguredProduct {
	c := p.Clone()
	c.Qty = qty
	return c
}

func (p *PreconfiguredProduct) ToRecord() Record {
	return Record{
		"Code":                  p.Code,
		"Description":           p.Description,
		"Name":                  p.Name,
		"Size":                  p.Size,
		"Options":               copyOptions(p.Options),
		"ReferencedProductCode": p.ReferencedProductCode,
		"Tags":                  copyMap(p.Tags),
		"Qty":                   p.Qty,
	}
}

func (*PreconfiguredProduct) lineItem() {}

// LineItem is a cart entry that is sent in the order's Products array.
// Only *Variant and *PreconfiguredProduct implement it.
type LineItem interface {
	ToRecord() Record
	lineItem()
}
