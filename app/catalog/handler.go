package catalog

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/kaykidoutai/pizzapi2/app/api"
	"github.com/kaykidoutai/pizzapi2/models"
)

// DefaultThreshold is the search similarity threshold used when the request names none.
const DefaultThreshold = 75

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type Variant struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ProductDetail struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Variants    []Variant `json:"variants"`
	Toppings    []Option  `json:"toppings"`
	Sides       []Option  `json:"sides"`
}

type SearchResult struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Field string `json:"field"`
	Score int    `json:"score"`
}

type SearchResponse struct {
	Query     string         `json:"query"`
	Threshold int            `json:"threshold"`
	Results   []SearchResult `json:"results"`
}

// MenuProvider is the read side of a loaded store menu. *models.Menu implements it.
type MenuProvider interface {
	Products() []*models.Product
	ProductsByType(productType string) []*models.Product
	Product(code string) (*models.Product, error)
	Search(query string, threshold int) []models.SearchMatch
}

type CatalogHandler struct {
	menu MenuProvider
}

func NewCatalogHandler(m MenuProvider) *CatalogHandler {
	return &CatalogHandler{
		menu: m,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	offset, limit := api.Pagination(r)

	var products []*models.Product
	if productType := r.URL.Query().Get("type"); productType != "" {
		products = h.menu.ProductsByType(productType)
	} else {
		products = h.menu.Products()
	}

	page := api.Page(products, offset, limit)
	response := Response{
		Total:    len(products),
		Products: make([]Product, len(page)),
	}
	for i, p := range page {
		response.Products[i] = Product{
			Code:  p.Code,
			Name:  p.Name,
			Type:  p.ProductType,
			Price: startingPrice(p),
		}
	}

	api.OKResponse(w, response)
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	product, err := h.menu.Product(code)
	if errors.Is(err, models.ErrUnknownCode) {
		api.ErrorResponse(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		zap.L().Error("failed to get product", zap.String("code", code), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	codes := product.VariantCodes()
	variants := make([]Variant, len(codes))
	for i, vc := range codes {
		v := product.Variants[vc]
		variants[i] = Variant{
			Code:  v.Code,
			Name:  v.Name,
			Price: v.Price.InexactFloat64(),
		}
	}

	toppings := make([]Option, 0, len(product.AvailableToppings))
	for _, t := range product.AvailableToppings {
		toppings = append(toppings, Option{Code: t.Code, Name: t.Name})
	}
	sides := make([]Option, 0, len(product.AvailableSides))
	for _, s := range product.AvailableSides {
		sides = append(sides, Option{Code: s.Code, Name: s.Name})
	}
	sortOptions(toppings)
	sortOptions(sides)

	api.OKResponse(w, ProductDetail{
		Code:        product.Code,
		Name:        product.Name,
		Type:        product.ProductType,
		Description: product.Description,
		Variants:    variants,
		Toppings:    toppings,
		Sides:       sides,
	})
}

func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		api.ErrorResponse(w, http.StatusBadRequest, "missing query")
		return
	}

	threshold := DefaultThreshold
	if tStr := r.URL.Query().Get("threshold"); tStr != "" {
		t, err := strconv.Atoi(tStr)
		if err != nil || t < 0 || t > 100 {
			api.ErrorResponse(w, http.StatusBadRequest, "threshold must be between 0 and 100")
			return
		}
		threshold = t
	}

	matches := h.menu.Search(query, threshold)
	response := SearchResponse{
		Query:     query,
		Threshold: threshold,
		Results:   make([]SearchResult, len(matches)),
	}
	for i, m := range matches {
		response.Results[i] = SearchResult{
			Code:  m.Code(),
			Name:  m.Name(),
			Field: m.Field,
			Score: m.Score,
		}
	}

	api.OKResponse(w, response)
}

// startingPrice is the lowest variant price of the product.
func startingPrice(p *models.Product) float64 {
	var lowest float64
	for i, code := range p.VariantCodes() {
		price := p.Variants[code].Price.InexactFloat64()
		if i == 0 || price < lowest {
			lowest = price
		}
	}
	return lowest
}

func sortOptions(opts []Option) {
	sort.Slice(opts, func(i, j int) bool { return opts[i].Code < opts[j].Code })
}
