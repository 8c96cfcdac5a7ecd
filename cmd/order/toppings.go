package main

import (
	"fmt"
	"strings"

	"github.com/kaykidoutai/pizzapi2/models"
)

// parseToppings reads a comma-separated list of CODE[:COVERAGE[:AMOUNT]] entries,
// e.g. "P,S:1/2,X:1/1:2". Coverage defaults to the whole item, amount to normal.
func parseToppings(raw string) ([]models.ToppingRequest, error) {
	var out []models.ToppingRequest
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) > 3 {
			return nil, fmt.Errorf("invalid topping %q", entry)
		}

		req := models.ToppingRequest{Code: parts[0], Coverage: models.CoverageFull, Amount: models.AmountNormal}
		if len(parts) > 1 {
			switch models.Coverage(parts[1]) {
			case models.CoverageFull, models.CoverageHalf:
				req.Coverage = models.Coverage(parts[1])
			default:
				return nil, fmt.Errorf("invalid coverage %q for topping %s", parts[1], req.Code)
			}
		}
		if len(parts) > 2 {
			switch parts[2] {
			case models.AmountNormal.String():
				req.Amount = models.AmountNormal
			case models.AmountDouble.String():
				req.Amount = models.AmountDouble
			default:
				return nil, fmt.Errorf("invalid amount %q for topping %s", parts[2], req.Code)
			}
		}
		out = append(out, req)
	}
	return out, nil
}
