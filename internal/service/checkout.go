package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/client"
	"apparel-storefront/internal/dto"
	"apparel-storefront/internal/model"
	"apparel-storefront/internal/notify"
	"apparel-storefront/internal/repository"
)

const orderNumberAttempts = 3

type CheckoutService interface {
	// PlaceOrder runs the full sequence: validate, create order + items in
	// one transaction, initialize the hosted payment. The cart is never
	// cleared here.
	PlaceOrder(ctx context.Context, sessionID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// ConfirmPayment is the success callback: verify with the provider, mark
	// the order paid/processing, clear the cart. The only path that mutates
	// payment status.
	ConfirmPayment(ctx context.Context, sessionID, reference string) (*model.Order, error)
	// Abandon records that the user closed the payment page. The order stays
	// pending and payable; the cart is kept for retry.
	Abandon(ctx context.Context, sessionID, orderNumber string) error
	ListOrders(ctx context.Context, userID string) ([]*dto.OrderSummary, error)
	GetOrder(ctx context.Context, userID, orderNumber string) (*dto.OrderDetail, error)
}

type checkoutServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	cartStore   *cart.Store
	payment     client.PaymentClient
	hub         *notify.Hub
	currency    string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	cartStore *cart.Store,
	payment client.PaymentClient,
	hub *notify.Hub,
	currency string,
) CheckoutService {
	return &checkoutServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		cartStore:   cartStore,
		payment:     payment,
		hub:         hub,
		currency:    currency,
		inFlight:    make(map[string]struct{}),
	}
}

func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, sessionID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !s.acquire(sessionID) {
		return nil, ErrCheckoutInFlight
	}
	defer s.release(sessionID)

	relay := s.hub.Relay(sessionID)

	snapshot := s.cartStore.Snapshot(ctx, sessionID)
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	if vErr := validateCheckout(req); vErr != nil {
		relay.Post(notify.TypeError, "Check your details", vErr.Error())
		return nil, vErr
	}

	if !s.payment.Ready() {
		relay.Post(notify.TypeWarning, "Payment system loading", "The payment system is still starting. Please try again in a moment.")
		return nil, ErrPaymentNotReady
	}

	order, err := s.buildOrder(ctx, sessionID, req, snapshot)
	if err != nil {
		if vErr, ok := err.(*ValidationError); ok {
			relay.Post(notify.TypeError, "Check your details", vErr.Error())
		}
		return nil, err
	}

	items, err := s.buildItems(ctx, snapshot)
	if err != nil {
		if errors.Is(err, ErrProductUnavailable) {
			relay.Post(notify.TypeError, "Product unavailable", "A product in your cart is no longer available.")
		} else {
			title, message := classifyWriteError(err)
			relay.Post(notify.TypeError, title, message)
		}
		return nil, err
	}

	if err := s.createWithRetry(ctx, order, items); err != nil {
		title, message := classifyWriteError(err)
		relay.Post(notify.TypeError, title, message)
		return nil, fmt.Errorf("create order: %w", err)
	}

	initResp, err := s.payment.Initialize(ctx, &client.InitializeRequest{
		Email:     req.Email,
		Amount:    order.TotalAmount,
		Currency:  order.Currency,
		Reference: order.OrderNumber,
		Metadata: map[string]string{
			"order_number": order.OrderNumber,
			"session_id":   sessionID,
		},
	})
	if err != nil {
		// The order is already committed and stays payable; no rollback.
		relay.Post(notify.TypeError, "Payment unavailable",
			"Your order was recorded but payment could not start. Contact support with order "+order.OrderNumber+".")
		return nil, fmt.Errorf("initialize payment: %w", err)
	}

	return &dto.CheckoutResponse{
		OrderNumber:      order.OrderNumber,
		Reference:        initResp.Reference,
		AuthorizationURL: initResp.AuthorizationURL,
		AccessCode:       initResp.AccessCode,
	}, nil
}

func (s *checkoutServiceImpl) buildOrder(ctx context.Context, sessionID string, req *dto.CheckoutRequest, snapshot cart.Snapshot) (*model.Order, error) {
	order := &model.Order{
		UserID:        sessionID,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		TotalAmount:   snapshot.Total,
		Currency:      s.currency,
	}

	if id := req.Shipping.SavedAddressID; id != "" {
		saved, err := s.addressRepo.FindByID(ctx, id)
		if err != nil {
			return nil, &ValidationError{Field: "saved_address_id"}
		}
		if saved.UserID != sessionID {
			return nil, &ValidationError{Field: "saved_address_id"}
		}
		order.AddressID = saved.ID
	} else {
		addr := req.Shipping.NewAddress
		order.ShipFirstName = addr.FirstName
		order.ShipLastName = addr.LastName
		order.ShipStreet = addr.Street
		order.ShipCity = addr.City
		order.ShipState = addr.State
		order.ShipPostal = addr.PostalCode
		order.ShipCountry = addr.Country
	}

	return order, nil
}

func (s *checkoutServiceImpl) buildItems(ctx context.Context, snapshot cart.Snapshot) ([]*model.OrderItem, error) {
	productIDs := make([]string, 0, len(snapshot.Lines))
	seen := make(map[string]bool)
	for _, line := range snapshot.Lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	if len(products) != len(productIDs) {
		return nil, ErrProductUnavailable
	}

	items := make([]*model.OrderItem, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		items[i] = &model.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice, // snapshotted at add-to-cart time
			Currency:  s.currency,
			Color:     line.Color,
			Size:      line.Size,
		}
	}
	return items, nil
}

// createWithRetry regenerates the order number on a unique-index conflict,
// up to a bounded number of attempts.
func (s *checkoutServiceImpl) createWithRetry(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber()
		err = s.orderRepo.CreateWithItems(ctx, order, items)
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
		log.Printf("checkout: order number %s collided, retrying", order.OrderNumber)
	}
	return err
}

func (s *checkoutServiceImpl) ConfirmPayment(ctx context.Context, sessionID, reference string) (*model.Order, error) {
	relay := s.hub.Relay(sessionID)

	verify, err := s.payment.Verify(ctx, reference)
	if err != nil {
		relay.Post(notify.TypeError, "Payment verification failed", "We could not verify your payment. If you were charged, contact support.")
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if verify.Status != "success" {
		relay.Post(notify.TypeWarning, "Payment not completed", "Your payment was not completed. Your order is saved and can be paid later.")
		return nil, fmt.Errorf("payment status %q for reference %s", verify.Status, reference)
	}

	order, err := s.orderRepo.MarkPaid(ctx, reference)
	if err != nil {
		relay.Post(notify.TypeError, "Order update failed", "Payment succeeded but the order could not be updated. Contact support with reference "+reference+".")
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	s.cartStore.Clear(ctx, sessionID)
	relay.Post(notify.TypeSuccess, "Order placed", "Payment received. Your order "+order.OrderNumber+" is being processed.")

	return order, nil
}

func (s *checkoutServiceImpl) Abandon(ctx context.Context, sessionID, orderNumber string) error {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}
	if order.UserID != sessionID {
		return ErrNotFound
	}

	// No remote correction: the order stays pending and payable later.
	s.hub.Relay(sessionID).Post(notify.TypeWarning, "Payment not completed",
		"You closed the payment window. Your items are still in the cart and order "+orderNumber+" can be paid later.")
	return nil
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context, userID string) ([]*dto.OrderSummary, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]*dto.OrderSummary, len(orders))
	for i, o := range orders {
		out[i] = summaryOf(o)
	}
	return out, nil
}

func (s *checkoutServiceImpl) GetOrder(ctx context.Context, userID, orderNumber string) (*dto.OrderDetail, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotFound
	}

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	detail := &dto.OrderDetail{
		OrderSummary: *summaryOf(order),
		Email:        order.Email,
		Items:        make([]dto.OrderItemView, len(items)),
	}
	for i, item := range items {
		detail.Items[i] = dto.OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Currency:  item.Currency,
			Color:     item.Color,
			Size:      item.Size,
		}
	}
	return detail, nil
}

func summaryOf(o *model.Order) *dto.OrderSummary {
	return &dto.OrderSummary{
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		TotalAmount:   o.TotalAmount,
		Currency:      o.Currency,
		CreatedAt:     o.CreatedAt,
	}
}

func (s *checkoutServiceImpl) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *checkoutServiceImpl) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", time.Now().UTC().Format("20060102150405"), rand.Intn(10000))
}
