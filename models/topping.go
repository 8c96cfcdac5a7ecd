package models

// Coverage is how much of the item a topping covers, in the vendor's wire notation.
type Coverage string

const (
	CoverageHalf Coverage = "1/2"
	CoverageFull Coverage = "1/1"
)

// Amount is the topping density. Values are ordered so more can be added later.
type Amount int

const (
	AmountNormal Amount = iota + 1
	AmountDouble
)

func (c Coverage) Valid() bool {
	return c == CoverageHalf || c == CoverageFull
}

func (a Amount) Valid() bool {
	return a >= AmountNormal && a <= AmountDouble
}

func (a Amount) String() string {
	switch a {
	case AmountNormal:
		return "1"
	case AmountDouble:
		return "2"
	default:
		return "0"
	}
}

// Topping is a catalog topping. Coverage and Amount only mean something on the copy attached to a variant.
type Topping struct {
	Code         string
	Name         string
	Description  string
	Availability []any
	Local        bool
	Tags         map[string]any
	Coverage     Coverage
	Amount       Amount
}

var toppingFields = []string{"Availability", "Code", "Description", "Local", "Name", "Tags"}

func ToppingFromRecord(r Record) (*Topping, error) {
	if err := r.require("topping", toppingFields...); err != nil {
		return nil, err
	}
	return &Topping{
		Code:         r.str("Code"),
		Name:         r.str("Name"),
		Description:  r.str("Description"),
		Availability: r.list("Availability"),
		Local:        r.boolean("Local"),
		Tags:         r.tags("Tags"),
		Coverage:     CoverageFull,
		Amount:       AmountNormal,
	}, nil
}

func (t *Topping) Clone() *Topping {
	c := *t
	c.Availability = copyList(t.Availability)
	c.Tags = copyMap(t.Tags)
	return &c
}

// Option renders the topping as a variant option entry: {coverage: amount}.
func (t *Topping) Option() map[string]string {
	return map[string]string{string(t.Coverage): t.Amount.String()}
}

func (t *Topping) ToRecord() Record {
	return Record{
		"Availability": copyList(t.Availability),
		"Code":         t.Code,
		"Description":  t.Description,
		"Local":        t.Local,
		"Name":         t.Name,
		"Tags":         copyMap(t.Tags),
	}
}

// Side is a catalog side item such as a dip or a dressing.
type Side struct {
	Code         string
	Name         string
	Description  string
	Availability []any
	Local        bool
	Tags         map[string]any
	Qty          int
}

func SideFromRecord(r Record) (*Side, error) {
	if err := r.require("side", toppingFields...); err != nil {
		return nil, err
	}
	return &Side{
		Code:         r.str("Code"),
		Name:         r.str("Name"),
		Description:  r.str("Description"),
		Availability: r.list("Availability"),
		Local:        r.boolean("Local"),
		Tags:         r.tags("Tags"),
		Qty:          1,
	}, nil
}

func (s *Side) Clone() *Side {
	c := *s
	c.Availability = copyList(s.Availability)
	c.Tags = copyMap(s.Tags)
	return &c
}

// Order returns a copy of the side stamped with qty.
func (s *Side) Order(qty int) *Side {
	c := s.Clone()
	c.Qty = qty
	return c
}

func (s *Side) ToRecord() Record {
	return Record{
		"Availability": copyList(s.Availability),
		"Code":         s.Code,
		"Description":  s.Description,
		"Local":        s.Local,
		"Name":         s.Name,
		"Tags":         copyMap(s.Tags),
		"Qty":          s.Qty,
	}
}

// buildScoped builds a collection keyed first by product type, then by code.
func buildScoped[T any](raw map[string]any, parse func(Record) (*T, error), code func(*T) string) (map[string]map[string]*T, error) {
	out := make(map[string]map[string]*T, len(raw))
	for productType, group := range raw {
		entries := make(map[string]*T)
		for _, data := range asMap(group) {
			item, err := parse(Record(asMap(data)))
			if err != nil {
				return nil, err
			}
			entries[code(item)] = item
		}
		out[productType] = entries
	}
	return out, nil
}
