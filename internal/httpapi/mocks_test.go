package httpapi

import (
	"context"

	"tayarpro-be/internal/account"
	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/catalog"
	"tayarpro-be/internal/order"
	"tayarpro-be/internal/vehicle"

	"github.com/stretchr/testify/mock"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Register(ctx context.Context, params account.RegisterParams) (*account.Account, error) {
	args := m.Called(ctx, params)
	if a := args.Get(0); a != nil {
		return a.(*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountService) Login(ctx context.Context, username, password string) (string, *account.Account, error) {
	args := m.Called(ctx, username, password)
	if a := args.Get(1); a != nil {
		return args.String(0), a.(*account.Account), args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockAccountService) GetProfile(ctx context.Context, accountID string) (*account.Account, error) {
	args := m.Called(ctx, accountID)
	if a := args.Get(0); a != nil {
		return a.(*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, accountID string, params account.UpdateProfileParams) (*account.Account, error) {
	args := m.Called(ctx, accountID, params)
	if a := args.Get(0); a != nil {
		return a.(*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) GetTyre(ctx context.Context, itemID string) (*catalog.Tyre, error) {
	args := m.Called(ctx, itemID)
	if t := args.Get(0); t != nil {
		return t.(*catalog.Tyre), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ListTyres(ctx context.Context) ([]catalog.Tyre, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.([]catalog.Tyre), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ListBrands(ctx context.Context) ([]catalog.Brand, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]catalog.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) GetServiceItem(ctx context.Context, serviceID string) (*catalog.ServiceItem, error) {
	args := m.Called(ctx, serviceID)
	if s := args.Get(0); s != nil {
		return s.(*catalog.ServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ListServices(ctx context.Context) ([]catalog.ServiceItem, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]catalog.ServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ListServicesByType(ctx context.Context, serviceType string) ([]catalog.ServiceItem, error) {
	args := m.Called(ctx, serviceType)
	if s := args.Get(0); s != nil {
		return s.([]catalog.ServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ListPaymentMethods(ctx context.Context) ([]catalog.PaymentMethod, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]catalog.PaymentMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogService) ResolveProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCartService struct {
	mock.Mock
}

func (m *mockCartService) AddToCart(ctx context.Context, accountID, productID string, quantity int) (*cart.CartItem, error) {
	args := m.Called(ctx, accountID, productID, quantity)
	if c := args.Get(0); c != nil {
		return c.(*cart.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartService) GetCart(ctx context.Context, accountID string) ([]cart.CartItem, error) {
	args := m.Called(ctx, accountID)
	if c := args.Get(0); c != nil {
		return c.([]cart.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, accountID, productID string, quantity int) (*cart.CartItem, error) {
	args := m.Called(ctx, accountID, productID, quantity)
	if c := args.Get(0); c != nil {
		return c.(*cart.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartService) RemoveFromCart(ctx context.Context, accountID, productID string) error {
	args := m.Called(ctx, accountID, productID)
	return args.Error(0)
}

func (m *mockCartService) ClearCart(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type mockCheckoutService struct {
	mock.Mock
}

func (m *mockCheckoutService) Checkout(ctx context.Context, accountID, carID, dateStr, timeStr string, bay int) (string, error) {
	args := m.Called(ctx, accountID, carID, dateStr, timeStr, bay)
	return args.String(0), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) GetOrders(ctx context.Context, accountID string) ([]order.Order, error) {
	args := m.Called(ctx, accountID)
	if o := args.Get(0); o != nil {
		return o.([]order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) GetOrderDetail(ctx context.Context, orderID, accountID string) (*order.Order, []order.OrderLineDetail, error) {
	args := m.Called(ctx, orderID, accountID)
	var o *order.Order
	if v := args.Get(0); v != nil {
		o = v.(*order.Order)
	}
	var lines []order.OrderLineDetail
	if v := args.Get(1); v != nil {
		lines = v.([]order.OrderLineDetail)
	}
	return o, lines, args.Error(2)
}

type mockAppointmentService struct {
	mock.Mock
}

func (m *mockAppointmentService) GetAppointment(ctx context.Context, appointmentID, accountID string) (*appointment.Appointment, error) {
	args := m.Called(ctx, appointmentID, accountID)
	if a := args.Get(0); a != nil {
		return a.(*appointment.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) ListAppointments(ctx context.Context, accountID string) ([]appointment.Appointment, error) {
	args := m.Called(ctx, accountID)
	if a := args.Get(0); a != nil {
		return a.([]appointment.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) UpdateAppointment(ctx context.Context, appointmentID, accountID, dateStr, timeStr string, bay int) (*appointment.Appointment, error) {
	args := m.Called(ctx, appointmentID, accountID, dateStr, timeStr, bay)
	if a := args.Get(0); a != nil {
		return a.(*appointment.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentService) CancelAppointment(ctx context.Context, appointmentID, accountID string) (*appointment.Appointment, error) {
	args := m.Called(ctx, appointmentID, accountID)
	if a := args.Get(0); a != nil {
		return a.(*appointment.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVehicleService struct {
	mock.Mock
}

func (m *mockVehicleService) RegisterCar(ctx context.Context, accountID string, params vehicle.RegisterCarParams) (*vehicle.Car, error) {
	args := m.Called(ctx, accountID, params)
	if c := args.Get(0); c != nil {
		return c.(*vehicle.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleService) GetCars(ctx context.Context, accountID string) ([]vehicle.Car, error) {
	args := m.Called(ctx, accountID)
	if c := args.Get(0); c != nil {
		return c.([]vehicle.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleService) GetCar(ctx context.Context, carID, accountID string) (*vehicle.Car, error) {
	args := m.Called(ctx, carID, accountID)
	if c := args.Get(0); c != nil {
		return c.(*vehicle.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleService) DeleteCar(ctx context.Context, carID, accountID string) error {
	args := m.Called(ctx, carID, accountID)
	return args.Error(0)
}
