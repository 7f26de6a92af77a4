package handlers

import "github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/models"

// filterByCategory returns the products whose category exactly equals
// selected, preserving catalog order. An empty selection means no
// filter: the list comes back unchanged. Pure and idempotent, safe to
// recompute on every render.
func filterByCategory(products []models.Product, selected string) []models.Product {
	if selected == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Category == selected {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
