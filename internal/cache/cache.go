package cache

import (
	"context"
	"errors"

	"apparel-storefront/internal/model"
)

var ErrCacheMiss = errors.New("cache miss")

type ProductCache interface {
	Get(ctx context.Context, productID string) (*model.Product, error)
	Set(ctx context.Context, product *model.Product) error
	GetList(ctx context.Context) ([]*model.Product, error)
	SetList(ctx context.Context, products []*model.Product) error
}
