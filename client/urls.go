package client

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	CountryUSA    = "us"
	CountryCanada = "ca"
)

// URLs is the endpoint table of one vendor country site.
type URLs struct {
	Base    string
	Referer string
}

var countries = map[string]URLs{
	CountryUSA: {
		Base:    "https://order.dominos.com",
		Referer: "https://order.dominos.com/en/pages/order/",
	},
	CountryCanada: {
		Base:    "https://order.dominos.ca",
		Referer: "https://order.dominos.ca/en/pages/order/",
	},
}

// URLsFor returns the endpoint table for a country code.
func URLsFor(country string) (URLs, error) {
	u, ok := countries[strings.ToLower(country)]
	if !ok {
		return URLs{}, fmt.Errorf("unsupported country %q", country)
	}
	return u, nil
}

func (u URLs) MenuURL(storeID, lang string) string {
	q := url.Values{}
	q.Set("lang", lang)
	q.Set("structured", "true")
	return fmt.Sprintf("%s/power/store/%s/menu?%s", u.Base, url.PathEscape(storeID), q.Encode())
}

func (u URLs) PriceURL() string    { return u.Base + "/power/price-order" }
func (u URLs) ValidateURL() string { return u.Base + "/power/validate-order" }
func (u URLs) PlaceURL() string    { return u.Base + "/power/place-order" }
