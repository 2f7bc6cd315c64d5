package domain

type Product struct {
	ID          int
	Name        string
	Brand       string
	Category    string
	Description string
	Volume      string
	Price       int
	Image       string
	InStock     bool
	IsNew       bool
	Discount    *int // percent in (0,100], nil means no discount
}

// EffectivePrice returns the price after applying the optional
// percentage discount. The value is exact, formatting is up to callers.
func (p Product) EffectivePrice() float64 {
	if p.Discount == nil {
		return float64(p.Price)
	}
	return float64(p.Price) * (1 - float64(*p.Discount)/100)
}

func (p Product) Discounted() bool {
	return p.Discount != nil
}
