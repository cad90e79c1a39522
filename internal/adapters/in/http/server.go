// Package http exposes the marketplace API over HTTP. Handlers translate
// between the wire contracts and the application's commands and queries;
// all business decisions stay behind those handlers.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the marketplace API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMerchantHandler        commands.CreateMerchantCommandHandler
	createCheckoutSessionHandler commands.CreateCheckoutSessionCommandHandler
	completeCheckoutHandler      commands.CompleteCheckoutCommandHandler
	transitionOrderHandler       commands.TransitionOrderCommandHandler
	bulkTransitionHandler        commands.BulkTransitionOrdersCommandHandler

	// Query handlers
	deliveryQuoteHandler     queries.DeliveryQuoteQueryHandler
	getOrderEventsHandler    queries.GetOrderEventsQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createMerchantHandler commands.CreateMerchantCommandHandler,
	createCheckoutSessionHandler commands.CreateCheckoutSessionCommandHandler,
	completeCheckoutHandler commands.CompleteCheckoutCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	bulkTransitionHandler commands.BulkTransitionOrdersCommandHandler,
	deliveryQuoteHandler queries.DeliveryQuoteQueryHandler,
	getOrderEventsHandler queries.GetOrderEventsQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createMerchantHandler:        createMerchantHandler,
		createCheckoutSessionHandler: createCheckoutSessionHandler,
		completeCheckoutHandler:      completeCheckoutHandler,
		transitionOrderHandler:       transitionOrderHandler,
		bulkTransitionHandler:        bulkTransitionHandler,
		deliveryQuoteHandler:         deliveryQuoteHandler,
		getOrderEventsHandler:        getOrderEventsHandler,
		getOrdersByStatusHandler:     getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.POST("/merchants", s.CreateMerchant)
	api.POST("/delivery/quote", s.GetDeliveryQuote)
	api.POST("/checkout/sessions", s.CreateCheckoutSession)
	api.POST("/checkout/sessions/:id/complete", s.CompleteCheckout)
	api.POST("/orders/:id/status", s.TransitionOrder)
	api.POST("/orders/status/bulk", s.BulkTransitionOrders)
	api.GET("/orders/:id/events", s.GetOrderEvents)
	api.GET("/orders", s.GetOrdersByStatus)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMerchant handles POST /api/v1/merchants - registers a new merchant.
func (s *Server) CreateMerchant(ctx echo.Context) error {
	var newMerchant NewMerchant
	if err := ctx.Bind(&newMerchant); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	postalCode, err := kernel.NewPostalCode(newMerchant.PostalCode)
	if err != nil {
		return badRequest(ctx, "Invalid merchant data: "+err.Error())
	}

	profile, err := profileFromRequest(newMerchant)
	if err != nil {
		return badRequest(ctx, "Invalid merchant data: "+err.Error())
	}

	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateMerchantCommand(merchantID, newMerchant.Name, postalCode, profile)
	if err != nil {
		return badRequest(ctx, "Invalid merchant data: "+err.Error())
	}

	if handleErr := s.createMerchantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, MerchantCreated{ID: merchantID.String()})
}

// GetDeliveryQuote handles POST /api/v1/delivery/quote - computes a quote.
func (s *Server) GetDeliveryQuote(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(request.MerchantID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant id")
	}

	destination, err := kernel.NewPostalCode(request.PostalCode)
	if err != nil {
		return badRequest(ctx, "Invalid postal code: "+err.Error())
	}

	query, err := queries.NewDeliveryQuoteQuery(merchantID, destination, request.OrderTotal)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	quote, err := s.deliveryQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteToResponse(quote))
}

// CreateCheckoutSession handles POST /api/v1/checkout/sessions - opens a
// checkout session with a quote snapshot.
func (s *Server) CreateCheckoutSession(ctx echo.Context) error {
	var request NewCheckoutSession
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(request.MerchantID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant id")
	}

	destination, err := kernel.NewPostalCode(request.PostalCode)
	if err != nil {
		return badRequest(ctx, "Invalid postal code: "+err.Error())
	}

	items := make([]ports.CheckoutItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = ports.CheckoutItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	cmd, err := commands.NewCreateCheckoutSessionCommand(kernel.NewUUID(), merchantID, destination, items)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	session, err := s.createCheckoutSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutSessionCreated{
		SessionID: session.ID.String(),
		Subtotal:  session.Subtotal,
		Quote:     quoteToResponse(session.Quote),
	})
}

// CompleteCheckout handles POST /api/v1/checkout/sessions/:id/complete -
// converts a live session into an order.
func (s *Server) CompleteCheckout(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid session id")
	}

	cmd, err := commands.NewCompleteCheckoutCommand(kernel.NewUUID(), sessionID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	createdOrder, err := s.completeCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(createdOrder))
}

// TransitionOrder handles POST /api/v1/orders/:id/status - moves an order
// to a new status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, request.Actor, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updatedOrder, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updatedOrder))
}

// BulkTransitionOrders handles POST /api/v1/orders/status/bulk - moves a
// batch of orders to the same status, tallying per-order outcomes.
func (s *Server) BulkTransitionOrders(ctx echo.Context) error {
	var request BulkTransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, len(request.OrderIDs))
	for i, raw := range request.OrderIDs {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, fmt.Sprintf("Invalid order id %q", raw))
		}
		orderIDs[i] = orderID
	}

	target, err := order.StatusFromString(request.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewBulkTransitionOrdersCommand(orderIDs, target, request.Actor, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid bulk transition data: "+err.Error())
	}

	result, err := s.bulkTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkTransitionResponse{
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		TotalCount:   result.TotalCount,
	})
}

// GetOrderEvents handles GET /api/v1/orders/:id/events - returns the audit
// trail of an order, oldest first.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderEventsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid events request: "+err.Error())
	}

	events, err := s.getOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderEvent, len(events))
	for i, event := range events {
		response[i] = OrderEvent{
			ID:         event.ID.String(),
			OrderID:    event.OrderID.String(),
			From:       event.From,
			To:         event.To,
			Actor:      event.Actor,
			Reason:     event.Reason,
			OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=... - lists orders in
// the given status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:          o.ID.String(),
			MerchantID:  o.MerchantID.String(),
			Destination: o.Destination,
			Subtotal:    o.Subtotal,
			DeliveryFee: o.DeliveryFee,
			Status:      o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// profileFromRequest converts the wire merchant profile to its domain form.
func profileFromRequest(newMerchant NewMerchant) (merchant.DeliveryProfile, error) {
	profile := merchant.DeliveryProfile{
		DeliveryEnabled:    newMerchant.DeliveryEnabled,
		PickupEnabled:      newMerchant.PickupEnabled,
		DeliveryRadiusKm:   newMerchant.DeliveryRadiusKm,
		MinimumOrder:       newMerchant.MinimumOrder,
		DeliveryFee:        newMerchant.DeliveryFee,
		PreparationMinutes: newMerchant.PreparationMinutes,
	}

	if newMerchant.Latitude != nil && newMerchant.Longitude != nil {
		point, err := kernel.NewGeoPoint(*newMerchant.Latitude, *newMerchant.Longitude)
		if err != nil {
			return merchant.DeliveryProfile{}, err
		}
		profile.Coordinates = &point
	}

	if newMerchant.Settings != nil {
		settings, err := settingsFromRequest(*newMerchant.Settings)
		if err != nil {
			return merchant.DeliveryProfile{}, err
		}
		profile.Settings = &settings
	}

	return profile, nil
}

// settingsFromRequest converts the wire settings union to a validated
// domain variant.
func settingsFromRequest(request DeliverySettings) (merchant.DeliverySettings, error) {
	switch request.Model {
	case "FLAT":
		if request.Flat == nil {
			return merchant.DeliverySettings{}, errs.NewValueIsRequiredError("settings.flat")
		}
		return merchant.NewFlatSettings(merchant.FlatConfig{
			FlatRate:             request.Flat.FlatRate,
			SpecialAreaSurcharge: request.Flat.SpecialAreaSurcharge,
		}, request.FreeDeliveryMinimum)

	case "DISTANCE":
		if request.Distance == nil {
			return merchant.DeliverySettings{}, errs.NewValueIsRequiredError("settings.distance")
		}
		tiers := make([]merchant.DistanceTier, len(request.Distance.Tiers))
		for i, tier := range request.Distance.Tiers {
			tiers[i] = merchant.DistanceTier{
				MinKm:         tier.MinKm,
				MaxKm:         tier.MaxKm,
				AdditionalFee: tier.AdditionalFee,
			}
		}
		return merchant.NewDistanceSettings(merchant.DistanceConfig{
			BaseRate:  request.Distance.BaseRate,
			PerKmRate: request.Distance.PerKmRate,
			Tiers:     tiers,
		}, request.FreeDeliveryMinimum)

	case "ZONE":
		if request.Zone == nil {
			return merchant.DeliverySettings{}, errs.NewValueIsRequiredError("settings.zone")
		}
		return merchant.NewZoneSettings(merchant.ZoneConfig(*request.Zone), request.FreeDeliveryMinimum)

	case "FREE":
		return merchant.NewFreeSettings(request.FreeDeliveryMinimum)

	default:
		return merchant.DeliverySettings{}, errs.NewValueIsInvalidErrorWithCause(
			"settings.model",
			fmt.Errorf("%q is not a pricing model", request.Model),
		)
	}
}

// quoteToResponse converts a computed quote to its wire form.
func quoteToResponse(quote services.Quote) QuoteResponse {
	return QuoteResponse{
		Fee:              quote.Fee,
		EstimatedMinutes: quote.EstimatedMinutes,
		DistanceKm:       quote.DistanceKm,
		DistanceResolved: quote.DistanceResolved,
		Zone:             quote.Zone.String(),
		Model:            quote.Model.String(),
		IsSpecialArea:    quote.IsSpecialArea,
		FreeDelivery:     quote.FreeDelivery,
		Message:          quote.Message,
	}
}

// orderToResponse converts an order aggregate to its wire form.
func orderToResponse(aggregate *order.Order) Order {
	return Order{
		ID:          aggregate.ID().String(),
		MerchantID:  aggregate.MerchantID().String(),
		Destination: aggregate.Destination().String(),
		Subtotal:    aggregate.Subtotal(),
		DeliveryFee: aggregate.DeliveryFee(),
		Status:      aggregate.Status().String(),
	}
}

// badRequest writes a VALIDATION_ERROR response.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: codeValidation, Message: message})
}

// respondError maps application errors to HTTP status codes and stable
// error codes. Business-rule rejections keep their context so clients can
// render an actionable message.
func respondError(ctx echo.Context, err error) error {
	var (
		notFoundErr          *errs.ObjectNotFoundError
		outOfRangeErr        *services.OutOfRangeError
		minimumOrderErr      *merchant.MinimumOrderNotMetError
		invalidTransitionErr *order.InvalidTransitionError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, Error{Code: codeNotFound, Message: err.Error()})

	case errors.Is(err, services.ErrDeliveryDisabled):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    codeDeliveryDisabled,
			Message: "Merchant does not offer delivery",
		})

	case errors.As(err, &outOfRangeErr):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    codeOutOfRange,
			Message: err.Error(),
		})

	case errors.As(err, &minimumOrderErr):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    codeMinimumOrderNotMet,
			Message: err.Error(),
		})

	case errors.As(err, &invalidTransitionErr):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    codeInvalidTransition,
			Message: err.Error(),
		})

	case errors.Is(err, ports.ErrConcurrentTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    codeConcurrentConflict,
			Message: "Order status changed concurrently, retry with fresh state",
		})

	case errors.Is(err, ports.ErrSessionExpired):
		return ctx.JSON(http.StatusGone, Error{
			Code:    codeSessionExpired,
			Message: "Checkout session expired, request a new quote",
		})

	case errors.Is(err, ports.ErrSessionNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: codeNotFound, Message: err.Error()})

	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{Code: codeValidation, Message: err.Error()})

	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    codeInternalServerError,
			Message: "Internal server error",
		})
	}
}
