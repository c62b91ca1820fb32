package service

import (
	"context"
	"errors"
	"testing"

	"apparel-storefront/internal/cache"
	"apparel-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsFillsCacheOnMiss(t *testing.T) {
	repo := &MockProductRepository{
		Products: []*model.Product{{ID: "tee_classic", Name: "Classic Tee", Price: 2900}},
	}
	productCache := &MockProductCache{GetErr: cache.ErrCacheMiss}
	svc := NewCatalogService(repo, productCache)
	ctx := context.Background()

	first, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.ListCalls)
	assert.Equal(t, 1, productCache.SetCalls)

	// second read comes from the cache
	second, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.ListCalls)
}

func TestGetProductCacheErrorFailsOpen(t *testing.T) {
	repo := &MockProductRepository{
		Products: []*model.Product{{ID: "cap_logo", Name: "Logo Cap", Price: 2200}},
	}
	productCache := &MockProductCache{GetErr: errors.New("redis get failed: connection refused")}
	svc := NewCatalogService(repo, productCache)

	product, err := svc.GetProduct(context.Background(), "cap_logo")

	require.NoError(t, err)
	assert.Equal(t, "Logo Cap", product.Name)
	assert.Equal(t, 1, repo.FindCalls)
}

func TestGetProductUnknown(t *testing.T) {
	repo := &MockProductRepository{}
	svc := NewCatalogService(repo, &MockProductCache{GetErr: cache.ErrCacheMiss})

	_, err := svc.GetProduct(context.Background(), "no-such-sku")

	assert.Error(t, err)
}
