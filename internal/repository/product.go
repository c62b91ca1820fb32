package repository

import (
	"context"

	"apparel-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: "tee_classic", Name: "Classic Tee", Description: "Heavyweight cotton tee", Price: 2900, Currency: "USD", ImageKey: "products/tee_classic.jpg", Colors: "black,white,navy", Sizes: "S,M,L,XL"},
		{ID: "hoodie_zip", Name: "Zip Hoodie", Description: "Fleece-lined zip hoodie", Price: 7400, Currency: "USD", ImageKey: "products/hoodie_zip.jpg", Colors: "black,grey", Sizes: "S,M,L,XL"},
		{ID: "cap_logo", Name: "Logo Cap", Description: "Adjustable twill cap", Price: 2200, Currency: "USD", ImageKey: "products/cap_logo.jpg", Colors: "black", Sizes: ""},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
