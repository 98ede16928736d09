package components

import (
	"court-reservation/internal/handler"
	"court-reservation/internal/handler/api"
	"court-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewOwnerHandler,
		api.NewAdminHandler,
		api.NewRatingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(b *api.BookingHandler, o *api.OwnerHandler, a *api.AdminHandler, r *api.RatingHandler) handler.Handlers {
	return handler.Handlers{
		Booking: b,
		Owner:   o,
		Admin:   a,
		Rating:  r,
	}
}
