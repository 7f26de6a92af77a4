package models

// Product is one catalog item as returned by the catalog endpoint.
// Every field is text; price keeps whatever formatting the backend
// stored ("R$ 59,90") and is never parsed as a number here.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Shipment    string `json:"shipment"`
}
