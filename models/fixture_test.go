package models

// --- Helpers ---

func variantRecord(code, productCode, name string, price any) map[string]any {
	return map[string]any{
		"Code":                       code,
		"FlavorCode":                 "HANDTOSS",
		"ImageCode":                  productCode,
		"Local":                      false,
		"Name":                       name,
		"Price":                      price,
		"ProductCode":                productCode,
		"SizeCode":                   "14",
		"Tags":                       map[string]any{"Specialty": false, "Sodium": "Warning"},
		"AllowedCookingInstructions": "PIECE=UNCT,SQCT",
		"DefaultCookingInstructions": "PIECE=PIECE",
		"Prepared":                   "true",
		"Pricing":                    map[string]any{"Price1-0": "12.99"},
		"Surcharge":                  "0",
	}
}

func toppingRecord(code, name string) map[string]any {
	return map[string]any{
		"Availability": []any{},
		"Code":         code,
		"Description":  "",
		"Local":        float64(0),
		"Name":         name,
		"Tags":         map[string]any{"Meat": true},
	}
}

func productRecord(code, name, productType, description string, variants []any, available, defaults, sides, defaultSides string) map[string]any {
	return map[string]any{
		"AvailableToppings": available,
		"AvailableSides":    sides,
		"Code":              code,
		"DefaultToppings":   defaults,
		"DefaultSides":      defaultSides,
		"Description":       description,
		"ImageCode":         code,
		"Local":             false,
		"Name":              name,
		"ProductType":       productType,
		"Tags":              map[string]any{},
		"Variants":          variants,
	}
}

func testDocument() map[string]any {
	return map[string]any{
		"Variants": map[string]any{
			"14SCREEN": variantRecord("14SCREEN", "S_PIZZA", "Large (14\") Hand Tossed Pizza", "12.99"),
			"12SCREEN": variantRecord("12SCREEN", "P_HAWAII", "Medium (12\") Hand Tossed Pizza", float64(10.99)),
			"B8PCPT":   variantRecord("B8PCPT", "F_PARMT", "Parmesan Bread Twists", "N/A"),
		},
		"Toppings": map[string]any{
			"Pizza": map[string]any{
				"X": toppingRecord("X", "Robust Inspired Tomato Sauce"),
				"S": toppingRecord("S", "Italian Sausage"),
				"P": toppingRecord("P", "Pepperoni"),
				"H": toppingRecord("H", "Ham"),
			},
			"Bread": map[string]any{
				"K": toppingRecord("K", "Garlic"),
			},
		},
		"Sides": map[string]any{
			"Pizza": map[string]any{},
			"Bread": map[string]any{
				"MRN": toppingRecord("MRN", "Marinara Sauce"),
			},
		},
		"Products": map[string]any{
			"S_PIZZA":  productRecord("S_PIZZA", "Pepperoni Pizza", "Pizza", "Classic pepperoni with mozzarella", []any{"14SCREEN"}, "X=0:0.5:1:1.5,S,P=1", "X=1,P=1", "", ""),
			"P_HAWAII": productRecord("P_HAWAII", "Honolulu Hawaiian", "Pizza", "Ham and pineapple", []any{"12SCREEN"}, "X,H", "X=1,H=1", "", ""),
			"F_PARMT":  productRecord("F_PARMT", "Parmesan Bread Twists", "Bread", "Handmade twists baked with garlic twists", []any{"B8PCPT"}, "K", "", "MRN", "MRN=1"),
		},
		"Coupons": map[string]any{
			"9012": map[string]any{
				"Code":        "9012",
				"ImageCode":   "",
				"Description": "Any large specialty pizza",
				"Name":        "Large Specialty Pizza",
				"Price":       "13.99",
				"Tags":        map[string]any{"ValidServiceMethods": []any{"Carryout", "Delivery"}},
				"Local":       "false",
				"Bundle":      "true",
			},
		},
		"PreconfiguredProducts": map[string]any{
			"14SCEXTRAV": map[string]any{
				"Code":                  "14SCEXTRAV",
				"Description":           "Pepperoni, ham and sausage",
				"Name":                  "Large ExtravaganZZa",
				"Size":                  "Large (14\")",
				"Options":               "X=1,C=1,H=1,P=1,S=1",
				"ReferencedProductCode": "S_PIZZA",
				"Tags":                  map[string]any{},
			},
		},
	}
}
