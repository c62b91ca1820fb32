package service

import (
	"context"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/client"
	"apparel-storefront/internal/model"
)

// MockOrderRepository implements repository.OrderRepository for testing
type MockOrderRepository struct {
	CreateCalls   int
	CreateErrs    []error // consumed one per call, nil past the end
	CreatedOrder  *model.Order // captures the order passed to CreateWithItems
	CreatedItems  []*model.OrderItem
	FindOrder     *model.Order
	FindErr       error
	ListResult    []*model.Order
	ListErr       error
	ItemsResult   []*model.OrderItem
	ItemsErr      error
	MarkPaidOrder *model.Order
	MarkPaidErr   error
	MarkPaidCalls int
}

func (m *MockOrderRepository) CreateWithItems(_ context.Context, order *model.Order, items []*model.OrderItem) error {
	m.CreateCalls++
	var err error
	if len(m.CreateErrs) > 0 {
		err = m.CreateErrs[0]
		m.CreateErrs = m.CreateErrs[1:]
	}
	if err != nil {
		return err
	}
	m.CreatedOrder = order
	m.CreatedItems = items
	return nil
}

func (m *MockOrderRepository) FindByNumber(_ context.Context, _ string) (*model.Order, error) {
	return m.FindOrder, m.FindErr
}

func (m *MockOrderRepository) ListByUser(_ context.Context, _ string) ([]*model.Order, error) {
	return m.ListResult, m.ListErr
}

func (m *MockOrderRepository) GetItems(_ context.Context, _ uint) ([]*model.OrderItem, error) {
	return m.ItemsResult, m.ItemsErr
}

func (m *MockOrderRepository) MarkPaid(_ context.Context, _ string) (*model.Order, error) {
	m.MarkPaidCalls++
	return m.MarkPaidOrder, m.MarkPaidErr
}

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	Products  []*model.Product
	FindErr   error
	ListCalls int
	FindCalls int
}

func (m *MockProductRepository) Seed(_ context.Context) error {
	return nil
}

func (m *MockProductRepository) FindByID(_ context.Context, productID string) (*model.Product, error) {
	m.FindCalls++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, p := range m.Products {
		if p.ID == productID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockProductRepository) FindMany(_ context.Context, productIDs []string) ([]*model.Product, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []*model.Product
	for _, id := range productIDs {
		for _, p := range m.Products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *MockProductRepository) List(_ context.Context) ([]*model.Product, error) {
	m.ListCalls++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Products, nil
}

// MockAddressRepository implements repository.AddressRepository for testing
type MockAddressRepository struct {
	Saved       *model.Address
	FindErr     error
	Created     *model.Address
	CreateErr   error
	ListResult  []*model.Address
	ListErr     error
}

func (m *MockAddressRepository) Create(_ context.Context, address *model.Address) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = address
	return nil
}

func (m *MockAddressRepository) FindByID(_ context.Context, _ string) (*model.Address, error) {
	return m.Saved, m.FindErr
}

func (m *MockAddressRepository) ListByUser(_ context.Context, _ string) ([]*model.Address, error) {
	return m.ListResult, m.ListErr
}

// MockPaymentClient implements client.PaymentClient for testing
type MockPaymentClient struct {
	ReadyVal    bool
	InitResp    *client.InitializeResponse
	InitErr     error
	InitCalls   int
	LastInit    *client.InitializeRequest
	InitStarted chan struct{} // signalled when Initialize is entered, if set
	InitRelease chan struct{} // Initialize blocks on this until closed, if set
	VerifyResp  *client.VerifyResponse
	VerifyErr   error
}

func (m *MockPaymentClient) Ready() bool {
	return m.ReadyVal
}

func (m *MockPaymentClient) Initialize(_ context.Context, req *client.InitializeRequest) (*client.InitializeResponse, error) {
	m.InitCalls++
	m.LastInit = req
	if m.InitStarted != nil {
		m.InitStarted <- struct{}{}
	}
	if m.InitRelease != nil {
		<-m.InitRelease
	}
	return m.InitResp, m.InitErr
}

func (m *MockPaymentClient) Verify(_ context.Context, _ string) (*client.VerifyResponse, error) {
	return m.VerifyResp, m.VerifyErr
}

// nullPersister keeps cart persistence out of service tests.
type nullPersister struct{}

func (nullPersister) Save(_ context.Context, _ string, _ []cart.Line) error {
	return nil
}

func (nullPersister) Load(_ context.Context, _ string) ([]cart.Line, error) {
	return nil, nil
}

// MockProductCache implements cache.ProductCache for testing
type MockProductCache struct {
	Product  *model.Product
	Products []*model.Product
	GetErr   error
	SetCalls int
}

func (m *MockProductCache) Get(_ context.Context, _ string) (*model.Product, error) {
	if m.Product == nil {
		return nil, m.GetErr
	}
	return m.Product, nil
}

func (m *MockProductCache) Set(_ context.Context, product *model.Product) error {
	m.SetCalls++
	m.Product = product
	return nil
}

func (m *MockProductCache) GetList(_ context.Context) ([]*model.Product, error) {
	if m.Products == nil {
		return nil, m.GetErr
	}
	return m.Products, nil
}

func (m *MockProductCache) SetList(_ context.Context, products []*model.Product) error {
	m.SetCalls++
	m.Products = products
	return nil
}
