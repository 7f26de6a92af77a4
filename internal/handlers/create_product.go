package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/catalog"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/notify"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/store"
)

// CreateProduct handles the add-product dialog submission: validate the
// draft, forward it to the catalog endpoint, refresh the store.
//
// Validation failure re-renders the page with the entered values kept
// and the first error as a toast; nothing reaches the catalog.
// A transport failure is logged only: values are kept and no distinct
// user-visible error is shown. On success the draft is cleared and the
// dialog stays open until the user closes it.
func CreateProduct(client *catalog.Client, fetcher *catalog.Fetcher, productStore *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		draft, err := parseProductDraft(c)
		if err != nil {
			log.Printf("[%s] malformed form: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		selected := c.PostForm("return_category")

		if msg := draft.Validate(); msg != "" {
			log.Printf("[%s] validation failed: %s", route, msg)
			toast := notify.Error(msg)
			renderProductsPage(c, productStore, productsView{
				Status:     http.StatusUnprocessableEntity,
				Selected:   selected,
				Form:       draft,
				Toast:      &toast,
				DialogOpen: true,
			})
			return
		}

		err = client.CreateProduct(c.Request.Context(), catalog.CreateProductInput{
			Name:        draft.Name,
			Price:       draft.Price,
			Category:    draft.Category,
			Image:       draft.Image,
			Description: draft.Description,
			Shipment:    draft.Shipment,
		})
		if err != nil {
			log.Printf("[%s] submit failed: %v", route, err)
			renderProductsPage(c, productStore, productsView{
				Status:     http.StatusOK,
				Selected:   selected,
				Form:       draft,
				DialogOpen: true,
			})
			return
		}

		fetcher.Refresh(c.Request.Context())
		notify.SetFlash(c, notify.Success("Produto enviado com sucesso!"))

		target := "/?dialog=open"
		if selected != "" {
			target += "&category=" + url.QueryEscape(selected)
		}
		c.Redirect(http.StatusSeeOther, target)
	}
}
