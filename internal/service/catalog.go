package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"apparel-storefront/internal/cache"
	"apparel-storefront/internal/model"
	"apparel-storefront/internal/repository"

	"golang.org/x/sync/singleflight"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	cache       cache.ProductCache
	sfg         singleflight.Group // prevents cache stampede
}

func NewCatalogService(productRepo repository.ProductRepository, productCache cache.ProductCache) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		cache:       productCache,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	v, err, _ := s.sfg.Do("product-list", func() (interface{}, error) {
		products, cacheErr := s.cache.GetList(ctx)
		if cacheErr == nil {
			return products, nil
		}
		if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			log.Printf("catalog: cache get error: %v", cacheErr) // log cache error but continue
		}

		products, err := s.productRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}

		if setErr := s.cache.SetList(ctx, products); setErr != nil {
			log.Printf("catalog: cache set error: %v", setErr)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*model.Product), nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	v, err, _ := s.sfg.Do("product:"+productID, func() (interface{}, error) {
		product, cacheErr := s.cache.Get(ctx, productID)
		if cacheErr == nil {
			return product, nil
		}
		if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			log.Printf("catalog: cache get error: %v", cacheErr)
		}

		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("find product %s: %w", productID, err)
		}

		if setErr := s.cache.Set(ctx, product); setErr != nil {
			log.Printf("catalog: cache set error: %v", setErr)
		}
		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.Product), nil
}
