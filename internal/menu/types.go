package menu

// Item is a dish offered by the restaurant. Prices are in INR.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Menu is the full catalog.
type Menu struct {
	Items []Item `json:"items"`
}
