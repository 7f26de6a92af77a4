package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/catalog"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/config"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/handlers"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/middleware"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/store"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/token"
)

func main() {
	config.Load()

	tokens := token.NewFileStore(config.AppEnv.TokenFile)
	client := catalog.NewClient(config.AppEnv.CatalogURL, tokens)
	productStore := store.NewProductStore()
	fetcher := catalog.NewFetcher(client, productStore)

	log.Println("catalog endpoint:", config.AppEnv.CatalogURL)

	// Initial population, the page's fetch-on-mount. The server keeps
	// serving while it is in flight; a late result still applies.
	go fetcher.Refresh(context.Background())

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.LoadHTMLGlob("templates/**/*")
	r.Static("/public", "./public")

	r.GET("/", handlers.ProductsPage(productStore))
	r.POST("/products", handlers.CreateProduct(client, fetcher, productStore))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
