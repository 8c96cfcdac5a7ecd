package order

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Address is the delivery address as the order document carries it.
type Address struct {
	Street     string `mapstructure:"Street"`
	City       string `mapstructure:"City"`
	Region     string `mapstructure:"Region"`
	PostalCode string `mapstructure:"PostalCode"`
	Type       string `mapstructure:"Type"`
}

func (a Address) record() map[string]any {
	t := a.Type
	if t == "" {
		t = "House"
	}
	return map[string]any{
		"Street":     a.Street,
		"City":       a.City,
		"Region":     a.Region,
		"PostalCode": a.PostalCode,
		"Type":       t,
	}
}
