package catalog

import (
	"context"
	"log"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/store"
)

// Fetcher binds the catalog client to the product store: one call
// replaces the store's contents with the catalog's current list.
type Fetcher struct {
	client *Client
	store  *store.ProductStore
}

func NewFetcher(client *Client, productStore *store.ProductStore) *Fetcher {
	return &Fetcher{client: client, store: productStore}
}

// Refresh fetches the catalog and overwrites the store. A failed fetch
// is logged and leaves the store unchanged, stale but consistent.
// No caching, no retry.
func (f *Fetcher) Refresh(ctx context.Context) {
	products, err := f.client.FetchProducts(ctx)
	if err != nil {
		log.Printf("[GET catalog] fetch failed: %v", err)
		return
	}
	f.store.Replace(products)
	log.Printf("[GET catalog] store refreshed, %d products", len(products))
}
