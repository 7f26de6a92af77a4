package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/models"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/store"
)

func TestFetcher_RefreshReplacesStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"name":"Calça","category":"Roupas","price":"R$ 120,00"}]`)
	}))
	defer server.Close()

	productStore := store.NewProductStore()
	productStore.Replace([]models.Product{{Name: "antigo"}})

	fetcher := NewFetcher(NewClient(server.URL, staticToken("")), productStore)
	fetcher.Refresh(context.Background())

	got := productStore.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "Calça", got[0].Name)
}

func TestFetcher_FailedFetchLeavesStoreUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	productStore := store.NewProductStore()
	productStore.Replace([]models.Product{{Name: "Camiseta"}, {Name: "Boné"}})

	fetcher := NewFetcher(NewClient(server.URL, staticToken("")), productStore)
	fetcher.Refresh(context.Background())

	assert.Equal(t, 2, productStore.Len())
	assert.Equal(t, "Camiseta", productStore.Snapshot()[0].Name)
}
