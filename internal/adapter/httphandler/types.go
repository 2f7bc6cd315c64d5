package httphandler

import (
	"encoding/json"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/pkg/money"
)

type (
	Product struct {
		ID             int     `json:"id"`
		Name           string  `json:"name"`
		Brand          string  `json:"brand"`
		Category       string  `json:"category"`
		Description    string  `json:"description"`
		Volume         string  `json:"volume"`
		Price          int     `json:"price"`
		PriceText      string  `json:"price_text"`
		EffectivePrice float64 `json:"effective_price"`
		EffectiveText  string  `json:"effective_price_text"`
		Image          string  `json:"image"`
		InStock        bool    `json:"in_stock"`
		IsNew          bool    `json:"is_new"`
		Discount       *int    `json:"discount,omitempty"`
	}

	CartItem struct {
		Product
		Quantity      int     `json:"quantity"`
		LineTotal     float64 `json:"line_total"`
		LineTotalText string  `json:"line_total_text"`
	}

	Filter struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		PriceMin   int      `json:"price_min"`
		PriceMax   int      `json:"price_max"`
	}

	Cart struct {
		Items     []CartItem `json:"items"`
		Total     float64    `json:"total"`
		TotalText string     `json:"total_text"`
		Count     int        `json:"count"`
	}

	View struct {
		ActiveSection string     `json:"active_section"`
		Filter        Filter     `json:"filter"`
		Products      []Product  `json:"products"`
		FoundCount    int        `json:"found_count"`
		Cart          []CartItem `json:"cart"`
		CartTotal     float64    `json:"cart_total"`
		CartTotalText string     `json:"cart_total_text"`
		CartCount     int        `json:"cart_count"`
		CartOpen      bool       `json:"cart_open"`
	}

	Facets struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		PriceMin   int      `json:"price_min"`
		PriceMax   int      `json:"price_max"`
	}

	SectionContent struct {
		Section  string       `json:"section"`
		Title    string       `json:"title"`
		Lead     string       `json:"lead,omitempty"`
		Body     []string     `json:"body,omitempty"`
		Contacts *ContactInfo `json:"contacts,omitempty"`
	}

	ContactInfo struct {
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Hours   string `json:"hours"`
	}
)

type (
	SetSectionRequest struct {
		Section string `json:"section"`
	}

	ToggleRequest struct {
		Value string `json:"value"`
	}

	PriceRangeRequest struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}

	AddCartItemRequest struct {
		ProductID int `json:"product_id"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	CartOpenRequest struct {
		Open bool `json:"open"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Description:    p.Description,
		Volume:         p.Volume,
		Price:          p.Price,
		PriceText:      money.Format(float64(p.Price)),
		EffectivePrice: p.EffectivePrice(),
		EffectiveText:  money.Format(p.EffectivePrice()),
		Image:          p.Image,
		InStock:        p.InStock,
		IsNew:          p.IsNew,
		Discount:       p.Discount,
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toCartItems(items []domain.CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, i := range items {
		out = append(out, CartItem{
			Product:       toProduct(i.Product),
			Quantity:      i.Quantity,
			LineTotal:     i.LineTotal(),
			LineTotalText: money.Format(i.LineTotal()),
		})
	}
	return out
}

func toView(v domain.ViewSnapshot) View {
	return View{
		ActiveSection: string(v.ActiveSection),
		Filter: Filter{
			Categories: emptyNotNil(v.Filter.Categories),
			Brands:     emptyNotNil(v.Filter.Brands),
			PriceMin:   v.Filter.Price.Min,
			PriceMax:   v.Filter.Price.Max,
		},
		Products:      toProducts(v.Products),
		FoundCount:    v.FoundCount,
		Cart:          toCartItems(v.Cart),
		CartTotal:     v.CartTotal,
		CartTotalText: money.Format(v.CartTotal),
		CartCount:     v.CartCount,
		CartOpen:      v.CartOpen,
	}
}

func toSectionContent(sc domain.SectionContent) SectionContent {
	out := SectionContent{
		Section: string(sc.Section),
		Title:   sc.Title,
		Lead:    sc.Lead,
		Body:    sc.Body,
	}
	if sc.Contacts != nil {
		out.Contacts = &ContactInfo{
			Address: sc.Contacts.Address,
			Phone:   sc.Contacts.Phone,
			Email:   sc.Contacts.Email,
			Hours:   sc.Contacts.Hours,
		}
	}
	return out
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ViewEncoder renders snapshots with the same wire shape the HTTP
// endpoints use, so websocket pushes and GET /v1/view agree.
type ViewEncoder struct{}

func (ViewEncoder) Encode(v domain.ViewSnapshot) ([]byte, error) {
	return json.Marshal(toView(v))
}
