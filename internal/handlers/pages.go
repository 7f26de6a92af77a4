package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/notify"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/store"
)

// CategoryOption is one entry of the category nav. "Todos" carries an
// empty value, which clears the filter.
type CategoryOption struct {
	Label string
	Value string
}

var categoryOptions = []CategoryOption{
	{Label: "Todos", Value: ""},
	{Label: "Roupas", Value: "Roupas"},
	{Label: "Camisas", Value: "Camisas"},
	{Label: "Acessórios", Value: "Acessórios"},
}

// Presentational only: the price panel, free-shipping toggle and search
// box are rendered but not wired to any filter.
var priceRangeLabels = []string{
	"Até R$ 100",
	"Até R$ 100",
	"Até R$ 100",
	"Até R$ 100",
}

// Slide is one promotional banner of the carousel.
type Slide struct {
	Image string
	Alt   string
}

var carouselSlides = []Slide{
	{Image: "/public/banners/banner-1.svg", Alt: "Promoção da semana"},
	{Image: "/public/banners/banner-2.svg", Alt: "Novidades em Roupas"},
	{Image: "/public/banners/banner-3.svg", Alt: "Acessórios em destaque"},
}

// productsView is everything that varies between renders of the
// products page.
type productsView struct {
	Status     int
	Selected   string
	Form       ProductDraft
	Toast      *notify.Toast
	DialogOpen bool
}

func renderProductsPage(c *gin.Context, productStore *store.ProductStore, view productsView) {
	products := filterByCategory(productStore.Snapshot(), view.Selected)

	c.HTML(view.Status, "products.html", gin.H{
		"Categories":       categoryOptions,
		"SelectedCategory": view.Selected,
		"PriceRanges":      priceRangeLabels,
		"Slides":           carouselSlides,
		"Products":         products,
		"Form":             view.Form,
		"Toast":            view.Toast,
		"DialogOpen":       view.DialogOpen,
		"DismissAfterMS":   notify.DismissAfter.Milliseconds(),
	})
}

// ProductsPage renders the catalog page: header, carousel, filter
// panel, product grid and the add-product dialog. The displayed subset
// is recomputed from the store on every request.
func ProductsPage(productStore *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /"
		defer handlePanic(c, route)

		view := productsView{
			Status:     http.StatusOK,
			Selected:   c.Query("category"),
			Form:       ProductDraft{},
			DialogOpen: c.Query("dialog") == "open",
		}
		if toast, ok := notify.PopFlash(c); ok {
			view.Toast = &toast
		}

		renderProductsPage(c, productStore, view)
	}
}
