package cart

import (
	"context"
	"errors"

	"tayarpro-be/internal/catalog"
	"tayarpro-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error)
	GetCart(ctx context.Context, accountID string) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error)
	RemoveFromCart(ctx context.Context, accountID, productID string) error
	ClearCart(ctx context.Context, accountID string) error
}

type service struct {
	repo    Repository
	catalog catalog.Service
	locks   *AccountLocks
}

func NewService(repo Repository, catalogSvc catalog.Service, locks *AccountLocks) Service {
	return &service{repo: repo, catalog: catalogSvc, locks: locks}
}

// AddToCart adds a product to the account's cart. Adding a product that
// is already in the cart increments its quantity instead of creating a
// second line.
func (s *service) AddToCart(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("accountid", accountID),
		zap.String("productid", productID),
	)

	if quantity < 1 {
		log.Warn("invalid quantity", zap.Int("quantity", quantity))
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.ResolveProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrTyreNotFound) || errors.Is(err, catalog.ErrServiceNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	existing, err := s.repo.GetItem(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		item, err := s.repo.IncrementQuantity(ctx, accountID, productID, quantity)
		if err != nil {
			return nil, err
		}
		log.Info("cart quantity incremented", zap.Int("quantity", item.Quantity))
		return item, nil
	}

	item, err := s.repo.CreateItem(ctx, CreateItemParams{
		AccountID:   accountID,
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   product.UnitPrice,
		Description: product.Description,
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *service) GetCart(ctx context.Context, accountID string) ([]CartItem, error) {
	return s.repo.ListItems(ctx, accountID)
}

// UpdateQuantity overwrites the quantity of an existing cart line.
func (s *service) UpdateQuantity(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.repo.SetQuantity(ctx, accountID, productID, quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, accountID, productID string) error {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.repo.RemoveItem(ctx, accountID, productID)
}

func (s *service) ClearCart(ctx context.Context, accountID string) error {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.repo.Clear(ctx, accountID)
}
