package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaykidoutai/pizzapi2/models"
)

// --- Mock Menu ---

// MockMenu serves a real Menu and records the arguments it was called with.
type MockMenu struct {
	Menu       *models.Menu
	ProductErr error

	lastCalledType      string
	lastCalledCode      string
	lastCalledQuery     string
	lastCalledThreshold int
	searchCalls         int
}

func (m *MockMenu) Products() []*models.Product {
	return m.Menu.Products()
}

func (m *MockMenu) ProductsByType(productType string) []*models.Product {
	m.lastCalledType = productType
	return m.Menu.ProductsByType(productType)
}

func (m *MockMenu) Product(code string) (*models.Product, error) {
	m.lastCalledCode = code
	if m.ProductErr != nil {
		return nil, m.ProductErr
	}
	return m.Menu.Product(code)
}

func (m *MockMenu) Search(query string, threshold int) []models.SearchMatch {
	m.searchCalls++
	m.lastCalledQuery = query
	m.lastCalledThreshold = threshold
	return m.Menu.Search(query, threshold)
}

// --- Helpers ---

func variant(code, productCode, name, price string) map[string]any {
	return map[string]any{
		"Code": code, "FlavorCode": "HANDTOSS", "ImageCode": productCode, "Local": false,
		"Name": name, "Price": price, "ProductCode": productCode, "SizeCode": "14",
		"Tags": map[string]any{}, "AllowedCookingInstructions": "", "DefaultCookingInstructions": "",
		"Prepared": true, "Pricing": map[string]any{}, "Surcharge": "0",
	}
}

func option(code, name string) map[string]any {
	return map[string]any{"Availability": []any{}, "Code": code, "Description": "", "Local": false, "Name": name, "Tags": map[string]any{}}
}

func product(code, name, productType, description string, variants []any, toppings, sides string) map[string]any {
	return map[string]any{
		"AvailableToppings": toppings, "AvailableSides": sides, "Code": code, "DefaultToppings": "",
		"DefaultSides": "", "Description": description, "ImageCode": code, "Local": false,
		"Name": name, "ProductType": productType, "Tags": map[string]any{}, "Variants": variants,
	}
}

func newTestMenu(t *testing.T) *models.Menu {
	t.Helper()
	doc := map[string]any{
		"Variants": map[string]any{
			"14SCREEN": variant("14SCREEN", "S_PIZZA", "Large (14\") Hand Tossed Pizza", "12.99"),
			"10SCREEN": variant("10SCREEN", "S_PIZZA", "Small (10\") Hand Tossed Pizza", "7.99"),
			"B8PCPT":   variant("B8PCPT", "F_PARMT", "Parmesan Bread Twists", "5.99"),
			"W08PHOTW": variant("W08PHOTW", "S_HOTWINGS", "8-Piece Hot Wings", "8.99"),
		},
		"Toppings": map[string]any{
			"Pizza": map[string]any{"P": option("P", "Pepperoni"), "X": option("X", "Robust Inspired Tomato Sauce")},
		},
		"Sides": map[string]any{
			"Wings": map[string]any{"SIDRAN": option("SIDRAN", "Ranch")},
		},
		"Products": map[string]any{
			"S_PIZZA":    product("S_PIZZA", "Pepperoni Pizza", "Pizza", "Classic pepperoni", []any{"14SCREEN", "10SCREEN"}, "X,P", ""),
			"F_PARMT":    product("F_PARMT", "Parmesan Bread Twists", "Bread", "Handmade twists", []any{"B8PCPT"}, "", ""),
			"S_HOTWINGS": product("S_HOTWINGS", "Hot Buffalo Wings", "Wings", "Marinated wings", []any{"W08PHOTW"}, "", "SIDRAN=1"),
		},
		"Coupons":               map[string]any{},
		"PreconfiguredProducts": map[string]any{},
	}
	m, err := models.MenuFromDocument(doc, "us")
	require.NoError(t, err)
	return m
}

// --- Tests: GET /catalog ---

func TestHandleGet(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkMenuCalls     func(t *testing.T, menu *MockMenu)
	}{
		{
			name:               "Success with default pagination",
			url:                "/catalog",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 3, resp.Total)
				require.Len(t, resp.Products, 3)
				assert.Equal(t, "F_PARMT", resp.Products[0].Code)
				assert.Equal(t, "S_HOTWINGS", resp.Products[1].Code)
				assert.Equal(t, "S_PIZZA", resp.Products[2].Code)
				assert.Equal(t, 7.99, resp.Products[2].Price, "Expected the lowest variant price")
			},
			checkMenuCalls: func(t *testing.T, menu *MockMenu) {
				assert.Empty(t, menu.lastCalledType)
			},
		},
		{
			name:               "Success with custom pagination",
			url:                "/catalog?offset=1&limit=1",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 3, resp.Total)
				require.Len(t, resp.Products, 1)
				assert.Equal(t, "S_HOTWINGS", resp.Products[0].Code)
			},
		},
		{
			name:               "Offset past the end",
			url:                "/catalog?offset=20",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 3, resp.Total)
				assert.Len(t, resp.Products, 0)
			},
		},
		{
			name:               "Filter by type is case-insensitive",
			url:                "/catalog?type=pizza",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 1, resp.Total)
				require.Len(t, resp.Products, 1)
				assert.Equal(t, "Pizza", resp.Products[0].Type)
			},
			checkMenuCalls: func(t *testing.T, menu *MockMenu) {
				assert.Equal(t, "pizza", menu.lastCalledType)
			},
		},
		{
			name:               "Unknown type",
			url:                "/catalog?type=Dessert",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 0, resp.Total)
				assert.Len(t, resp.Products, 0)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			menu := &MockMenu{Menu: newTestMenu(t)}
			handler := NewCatalogHandler(menu)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGet(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkMenuCalls != nil {
				tc.checkMenuCalls(t, menu)
			}
		})
	}
}

// --- Tests: GET /catalog/{code} ---

func TestHandleGetProduct(t *testing.T) {
	testCases := []struct {
		name               string
		code               string
		productErr         error
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Success with variants and toppings",
			code:               "S_PIZZA",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ProductDetail
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Pepperoni Pizza", resp.Name)
				assert.Equal(t, "Pizza", resp.Type)
				require.Len(t, resp.Variants, 2)
				assert.Equal(t, "14SCREEN", resp.Variants[0].Code)
				assert.Equal(t, 12.99, resp.Variants[0].Price)
				assert.Equal(t, []Option{{Code: "P", Name: "Pepperoni"}, {Code: "X", Name: "Robust Inspired Tomato Sauce"}}, resp.Toppings)
				assert.Empty(t, resp.Sides)
			},
		},
		{
			name:               "Success with sides",
			code:               "S_HOTWINGS",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ProductDetail
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, []Option{{Code: "SIDRAN", Name: "Ranch"}}, resp.Sides)
			},
		},
		{
			name:               "Product not found",
			code:               "S_NOPE",
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "product not found", errResp["error"])
			},
		},
		{
			name:               "Provider error",
			code:               "S_PIZZA",
			productErr:         errors.New("menu not loaded"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			menu := &MockMenu{Menu: newTestMenu(t), ProductErr: tc.productErr}
			handler := NewCatalogHandler(menu)
			req := httptest.NewRequest("GET", "/catalog/"+tc.code, nil)
			req.SetPathValue("code", tc.code)
			rec := httptest.NewRecorder()

			handler.HandleGetProduct(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.code, menu.lastCalledCode)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: GET /catalog/search ---

func TestHandleSearch(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		expectedStatusCode int
		expectedThreshold  int
		expectSearch       bool
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Name match with default threshold",
			url:                "/catalog/search?q=pepperoni+pizza",
			expectedStatusCode: http.StatusOK,
			expectedThreshold:  DefaultThreshold,
			expectSearch:       true,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp SearchResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				require.Len(t, resp.Results, 1)
				assert.Equal(t, "S_PIZZA", resp.Results[0].Code)
				assert.Equal(t, "name", resp.Results[0].Field)
				assert.Equal(t, 100, resp.Results[0].Score)
			},
		},
		{
			name:               "Type match with explicit threshold",
			url:                "/catalog/search?q=wing&threshold=60",
			expectedStatusCode: http.StatusOK,
			expectedThreshold:  60,
			expectSearch:       true,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp SearchResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				require.NotEmpty(t, resp.Results)
				assert.Equal(t, "S_HOTWINGS", resp.Results[0].Code)
			},
		},
		{
			name:               "Missing query",
			url:                "/catalog/search",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Threshold out of range",
			url:                "/catalog/search?q=pizza&threshold=101",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Threshold not a number",
			url:                "/catalog/search?q=pizza&threshold=high",
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			menu := &MockMenu{Menu: newTestMenu(t)}
			handler := NewCatalogHandler(menu)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			handler.HandleSearch(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectSearch {
				assert.Equal(t, 1, menu.searchCalls)
				assert.Equal(t, tc.expectedThreshold, menu.lastCalledThreshold)
			} else {
				assert.Equal(t, 0, menu.searchCalls)
			}
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
