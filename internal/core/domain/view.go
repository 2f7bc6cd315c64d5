package domain

// ViewSnapshot is the full derived view state handed to adapters after
// every mutation. Slices are copies, mutating a snapshot never touches
// the holder's state.
type ViewSnapshot struct {
	ActiveSection Section
	Filter        Filter
	Products      []Product
	FoundCount    int
	Cart          []CartItem
	CartTotal     float64
	CartCount     int
	CartOpen      bool
}
