package catalog

import "context"

// Service defines the read-only catalog lookups.
type Service interface {
	GetTyre(ctx context.Context, itemID string) (*Tyre, error)
	ListTyres(ctx context.Context) ([]Tyre, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	GetServiceItem(ctx context.Context, serviceID string) (*ServiceItem, error)
	ListServices(ctx context.Context) ([]ServiceItem, error)
	ListServicesByType(ctx context.Context, serviceType string) ([]ServiceItem, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	ResolveProduct(ctx context.Context, productID string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetTyre(ctx context.Context, itemID string) (*Tyre, error) {
	tyre, err := s.repo.GetTyreByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if tyre == nil {
		return nil, ErrTyreNotFound
	}
	return tyre, nil
}

func (s *service) ListTyres(ctx context.Context) ([]Tyre, error) {
	return s.repo.ListTyres(ctx)
}

func (s *service) ListBrands(ctx context.Context) ([]Brand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *service) GetServiceItem(ctx context.Context, serviceID string) (*ServiceItem, error) {
	svc, err := s.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *service) ListServices(ctx context.Context) ([]ServiceItem, error) {
	return s.repo.ListServices(ctx)
}

func (s *service) ListServicesByType(ctx context.Context, serviceType string) ([]ServiceItem, error) {
	services, err := s.repo.ListServicesByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrServiceNotFound
	}
	return services, nil
}

func (s *service) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx)
}

// ResolveProduct looks a product id up in whichever catalog owns it and
// returns the unit price and description snapshot used by the cart.
func (s *service) ResolveProduct(ctx context.Context, productID string) (*Product, error) {
	if IsTyreID(productID) {
		tyre, err := s.repo.GetTyreByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if tyre == nil {
			return nil, ErrTyreNotFound
		}
		return &Product{
			ProductID:   tyre.ItemID,
			UnitPrice:   tyre.UnitPrice,
			Description: tyre.Description,
		}, nil
	}

	svc, err := s.repo.GetServiceByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return &Product{
		ProductID:   svc.ServiceID,
		UnitPrice:   svc.Price,
		Description: svc.Description,
	}, nil
}
