package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/rating"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the id of the authenticated caller.
const ActorHeader = "X-Actor-ID"

var errMissingActor = errors.New("missing " + ActorHeader + " header")

type (
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (kernel.UUID, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	TransitionOrderStatusHandler interface {
		Handle(
			ctx context.Context,
			cmd commands.TransitionOrderStatusCommand,
		) (commands.TransitionOrderStatusResult, error)
	}

	RequestReturnHandler interface {
		Handle(ctx context.Context, cmd commands.RequestReturnCommand) (kernel.UUID, error)
	}

	RateProductHandler interface {
		Handle(ctx context.Context, cmd commands.RateProductCommand) (rating.Summary, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	GetProductRatingHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetProductRatingQuery,
		) (queries.GetProductRatingQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddCartItem      AddCartItemHandler
	CreateOrder      CreateOrderHandler
	TransitionOrder  TransitionOrderStatusHandler
	RequestReturn    RequestReturnHandler
	RateProduct      RateProductHandler
	GetOrder         GetOrderHandler
	GetProductRating GetProductRatingHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/cart/items", s.AddCartItem)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/status", s.TransitionOrder)
	v1.POST("/orders/:id/returns", s.RequestReturn)
	v1.POST("/products/:id/ratings", s.RateProduct)
	v1.GET("/products/:id/rating", s.GetProductRating)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(actorID, productID, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddCartItemResponse{ID: id.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lineItemIDs := make([]kernel.UUID, 0, len(req.LineItemIDs))
	for _, raw := range req.LineItemIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		lineItemIDs = append(lineItemIDs, id)
	}

	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return s.fail(ctx, err)
	}

	var card *payment.CardDetails
	if method.RequiresInstrument() && req.Card != nil {
		details, cardErr := payment.NewCardDetails(req.Card.Number, req.Card.HolderName, req.Card.Expiry, req.Card.CVV)
		if cardErr != nil {
			return s.fail(ctx, cardErr)
		}
		card = &details
	}

	cmd, err := commands.NewCreateOrderCommand(actorID, lineItemIDs, method, card)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:     res.OrderID.String(),
		TotalAmount: res.Total.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actorID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]OrderLineItem, len(o.LineItems))
	for i, item := range o.LineItems {
		items[i] = OrderLineItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:            o.ID.String(),
		OwnerID:       o.OwnerID.String(),
		Status:        o.Status.String(),
		Total:         o.Total.String(),
		Discount:      o.Discount.String(),
		PaymentMethod: o.PaymentMethod.String(),
		TrackingCode:  o.TrackingCode,
		CreatedAt:     o.CreatedAt,
		LineItems:     items,
	})
}

// TransitionOrder handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(actorID, orderID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := TransitionOrderResponse{Status: res.Status.String()}
	if res.TrackingCode != nil {
		code := res.TrackingCode.String()
		resp.TrackingCode = &code
	}
	return ctx.JSON(http.StatusOK, resp)
}

// RequestReturn handles POST /api/v1/orders/:id/returns.
func (s *Server) RequestReturn(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req RequestReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	lineItemID, err := kernel.UUIDFromString(req.LineItemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRequestReturnCommand(actorID, orderID, lineItemID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.RequestReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RequestReturnResponse{ReturnID: id.String()})
}

// RateProduct handles POST /api/v1/products/:id/ratings.
func (s *Server) RateProduct(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req RateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRateProductCommand(actorID, orderID, productID, req.Value)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary, err := s.h.RateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RatingSummary{
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
	})
}

// GetProductRating handles GET /api/v1/products/:id/rating.
func (s *Server) GetProductRating(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductRatingQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.GetProductRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RatingSummary{
		AverageRating: res.AverageRating,
		RatingCount:   res.RatingCount,
	})
}

func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	raw := strings.TrimSpace(ctx.Request().Header.Get(ActorHeader))
	if raw == "" {
		return kernel.UUID{}, errMissingActor
	}
	return kernel.UUIDFromString(raw)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	if errors.Is(err, errMissingActor) {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, errorBody(status, err))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
