package httpapi

import (
	"net/http"

	"tayarpro-be/internal/account"
	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/catalog"
	"tayarpro-be/internal/checkout"
	"tayarpro-be/internal/logger"
	"tayarpro-be/internal/middleware"
	"tayarpro-be/internal/order"
	"tayarpro-be/internal/vehicle"

	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Services bundles everything the router exposes over HTTP.
type Services struct {
	Accounts     account.Service
	Catalog      catalog.Service
	Carts        cart.Service
	Checkout     checkout.Service
	Orders       order.Service
	Appointments appointment.Service
	Vehicles     vehicle.Service
	Tokens       *auth.TokenManager
}

func NewRouter(s Services) chi.Router {
	r := chi.NewRouter()

	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.Authenticator(s.Tokens))
	r.Use(middleware.RateLimitMiddleware)

	accounts := NewAccountHandler(s.Accounts)
	catalogH := NewCatalogHandler(s.Catalog)
	carts := NewCartHandler(s.Carts)
	checkoutH := NewCheckoutHandler(s.Checkout)
	orders := NewOrderHandler(s.Orders)
	appointments := NewAppointmentHandler(s.Appointments)
	vehicles := NewVehicleHandler(s.Vehicles)

	r.Post("/register", accounts.Register)
	r.Post("/login", accounts.Login)
	r.Get("/profile", accounts.GetProfile)
	r.Put("/profile", accounts.UpdateProfile)

	r.Get("/get_all_tyres", catalogH.GetAllTyres)
	r.Get("/get_product_by_id/{itemid}", catalogH.GetProductByID)
	r.Get("/get_all_brands", catalogH.GetAllBrands)
	r.Get("/get_all_services", catalogH.GetAllServices)
	r.Get("/get_service_by_id/{serviceid}", catalogH.GetServiceByID)
	r.Get("/get_payment_methods", catalogH.GetPaymentMethods)

	r.Post("/add_tyre_to_cart", carts.AddTyreToCart)
	r.Post("/add_service_to_cart", carts.AddServiceToCart)
	r.Get("/get_cart", carts.GetCart)
	r.Post("/get_cart", carts.GetCart)
	r.Put("/update_cart_quantity/{product_id}/{quantity}", carts.UpdateQuantity)
	r.Delete("/delete_cart_item/{product_id}", carts.DeleteItem)

	r.Post("/checkout", checkoutH.Checkout)

	r.Post("/get_all_orders", orders.GetAllOrders)
	r.Post("/get_order_detail", orders.GetOrderDetail)

	r.Get("/get_appointment", appointments.GetAppointments)
	r.Get("/get_appointment/{appointment_id}", appointments.GetAppointment)
	r.Put("/update_appointment", appointments.UpdateAppointment)
	r.Put("/cancel_appointment", appointments.CancelAppointment)

	r.Post("/add_new_car", vehicles.AddNewCar)
	r.Get("/get_cars", vehicles.GetCars)
	r.Get("/get_car/{carid}", vehicles.GetCar)
	r.Delete("/delete_car/{carid}", vehicles.DeleteCar)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
