package categories

import (
	"net/http"

	"github.com/kaykidoutai/pizzapi2/app/api"
	"github.com/kaykidoutai/pizzapi2/models"
)

type CategoryResponse struct {
	Name     string `json:"name"`
	Products int    `json:"products"`
}

// CategoryProvider lists the product types of a loaded menu. *models.Menu implements it.
type CategoryProvider interface {
	ProductTypes() []string
	ProductsByType(productType string) []*models.Product
}

type CategoryHandler struct {
	menu CategoryProvider
}

func NewCategoryHandler(m CategoryProvider) *CategoryHandler {
	return &CategoryHandler{menu: m}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	types := h.menu.ProductTypes()

	response := make([]CategoryResponse, len(types))
	for i, t := range types {
		response[i] = CategoryResponse{
			Name:     t,
			Products: len(h.menu.ProductsByType(t)),
		}
	}

	api.OKResponse(w, response)
}
