package order

import "context"

type Service interface {
	GetOrders(ctx context.Context, accountID string) ([]Order, error)
	GetOrderDetail(ctx context.Context, orderID, accountID string) (*Order, []OrderLineDetail, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrders(ctx context.Context, accountID string) ([]Order, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// GetOrderDetail returns the order joined with its enriched lines. An
// order belonging to another account is reported as not found.
func (s *service) GetOrderDetail(ctx context.Context, orderID, accountID string) (*Order, []OrderLineDetail, error) {
	o, err := s.repo.GetOrder(ctx, orderID, accountID)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, ErrOrderNotFound
	}

	lines, err := s.repo.ListLineDetails(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return o, lines, nil
}
