// Package http is the inbound HTTP adapter. It translates JSON requests into
// application commands and queries and maps domain failures onto status codes.
package http

import (
	"errors"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	EditOrder              commands.EditOrderCommandHandler
	ShipOrder              commands.ShipOrderCommandHandler
	EnqueueAtLocation      commands.EnqueueAtLocationCommandHandler
	StartAtLocation        commands.StartAtLocationCommandHandler
	PauseAtLocation        commands.PauseAtLocationCommandHandler
	FinishAtLocation       commands.FinishAtLocationCommandHandler
	UpdateQuantity         commands.UpdateQuantityAtLocationCommandHandler
	RequestHelp            commands.RequestHelpCommandHandler
	SetGlobalQueuePosition commands.SetGlobalQueuePositionCommandHandler
	RemoveFromAllQueues    commands.RemoveFromAllQueuesCommandHandler

	GetOrderBoard    queries.GetOrderBoardQueryHandler
	GetLocationQueue queries.GetLocationQueueQueryHandler
	GetNeededOrders  queries.GetNeededOrdersQueryHandler
	GetAuditTrail    queries.GetAuditTrailQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1 behind the given
// authentication middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderID", s.EditOrder)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.PUT("/orders/:orderID/global-queue-position", s.SetGlobalQueuePosition)
	api.DELETE("/orders/:orderID/queues", s.RemoveFromAllQueues)

	api.POST("/orders/:orderID/locations/:locationID/queue", s.EnqueueAtLocation)
	api.POST("/orders/:orderID/locations/:locationID/start", s.StartAtLocation)
	api.POST("/orders/:orderID/locations/:locationID/pause", s.PauseAtLocation)
	api.POST("/orders/:orderID/locations/:locationID/finish", s.FinishAtLocation)
	api.POST("/orders/:orderID/locations/:locationID/quantity", s.UpdateQuantityAtLocation)
	api.POST("/orders/:orderID/locations/:locationID/help", s.RequestHelp)

	api.GET("/orders/board", s.GetOrderBoard)
	api.GET("/orders/needed", s.GetNeededOrders)
	api.GET("/orders/:orderID/audit", s.GetAuditTrail)
	api.GET("/locations/:locationID/queue", s.GetLocationQueue)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "missing identity")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber, req.ReferenceNumber, req.Client,
		req.DueDate, req.TotalQuantity, req.Rush, actor,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// EditOrder handles PUT /api/v1/orders/:orderID.
func (s *Server) EditOrder(ctx echo.Context) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "missing identity")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req EditOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(
		orderID, req.Client, req.DueDate, req.TotalQuantity, req.Rush, actor,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "missing identity")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.Quantity, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetGlobalQueuePosition handles PUT /api/v1/orders/:orderID/global-queue-position.
func (s *Server) SetGlobalQueuePosition(ctx echo.Context) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "missing identity")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req GlobalQueuePositionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetGlobalQueuePositionCommand(orderID, req.Position, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.SetGlobalQueuePosition.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromAllQueues handles DELETE /api/v1/orders/:orderID/queues.
func (s *Server) RemoveFromAllQueues(ctx echo.Context) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx, "missing identity")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRemoveFromAllQueuesCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.RemoveFromAllQueues.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EnqueueAtLocation handles POST /api/v1/orders/:orderID/locations/:locationID/queue.
func (s *Server) EnqueueAtLocation(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewEnqueueAtLocationCommand(orderID, locationID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.EnqueueAtLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartAtLocation handles POST /api/v1/orders/:orderID/locations/:locationID/start.
func (s *Server) StartAtLocation(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartAtLocationCommand(orderID, locationID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.StartAtLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PauseAtLocation handles POST /api/v1/orders/:orderID/locations/:locationID/pause.
func (s *Server) PauseAtLocation(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewPauseAtLocationCommand(orderID, locationID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.PauseAtLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// FinishAtLocation handles POST /api/v1/orders/:orderID/locations/:locationID/finish.
func (s *Server) FinishAtLocation(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	var req QuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewFinishAtLocationCommand(orderID, locationID, req.Quantity, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.FinishAtLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateQuantityAtLocation handles POST /api/v1/orders/:orderID/locations/:locationID/quantity.
func (s *Server) UpdateQuantityAtLocation(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	var req QuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateQuantityAtLocationCommand(orderID, locationID, req.Quantity, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.UpdateQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RequestHelp handles POST /api/v1/orders/:orderID/locations/:locationID/help.
func (s *Server) RequestHelp(ctx echo.Context) error {
	actor, orderID, locationID, ok := workflowParams(ctx)
	if !ok {
		return nil
	}

	var req RequestHelpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestHelpCommand(orderID, locationID, req.Notes, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.RequestHelp.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

// GetOrderBoard handles GET /api/v1/orders/board.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	query := queries.NewGetOrderBoardQuery()

	items, err := s.handlers.GetOrderBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to load order board")
	}

	response := make([]OrderBoardItemResponse, len(items))
	for i, item := range items {
		locations := make([]OrderBoardLocationResponse, len(item.Locations))
		for j, loc := range item.Locations {
			locations[j] = OrderBoardLocationResponse{
				LocationID:        loc.LocationID.String(),
				LocationName:      loc.LocationName,
				Status:            loc.Status,
				QueuePosition:     loc.QueuePosition,
				CompletedQuantity: loc.CompletedQuantity,
				EffectiveQuantity: loc.EffectiveQuantity,
			}
		}
		response[i] = OrderBoardItemResponse{
			ID:                  item.ID.String(),
			OrderNumber:         item.OrderNumber,
			ReferenceNumber:     item.ReferenceNumber,
			Client:              item.Client,
			DueDate:             item.DueDate,
			TotalQuantity:       item.TotalQuantity,
			ShippedQuantity:     item.ShippedQuantity,
			PartiallyShipped:    item.PartiallyShipped,
			Rush:                item.Rush,
			GlobalQueuePosition: item.GlobalQueuePosition,
			Completion:          item.Completion,
			Readiness:           item.Readiness,
			Locations:           locations,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNeededOrders handles GET /api/v1/orders/needed.
func (s *Server) GetNeededOrders(ctx echo.Context) error {
	query := queries.NewGetNeededOrdersQuery()

	needed, err := s.handlers.GetNeededOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to load needed orders")
	}

	response := make([]NeededOrderResponse, len(needed))
	for i, item := range needed {
		response[i] = NeededOrderResponse{
			OrderID:      item.OrderID.String(),
			OrderNumber:  item.OrderNumber,
			Client:       item.Client,
			DueDate:      item.DueDate,
			Rush:         item.Rush,
			LocationID:   item.LocationID.String(),
			LocationName: item.LocationName,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/orders/:orderID/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetAuditTrailQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetAuditTrail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to load audit trail")
	}

	response := make([]AuditEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = AuditEntryResponse{
			ID:         entry.ID.String(),
			Action:     entry.Action,
			ActorID:    uuidString(entry.ActorID),
			LocationID: uuidString(entry.LocationID),
			Details:    entry.Details,
			RecordedAt: entry.RecordedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetLocationQueue handles GET /api/v1/locations/:locationID/queue.
func (s *Server) GetLocationQueue(ctx echo.Context) error {
	locationID, err := pathUUID(ctx, "locationID")
	if err != nil {
		return badRequest(ctx, "invalid location id")
	}

	query, err := queries.NewGetLocationQueueQuery(locationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	queue, err := s.handlers.GetLocationQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to load location queue")
	}

	response := make([]LocationQueueItemResponse, len(queue))
	for i, item := range queue {
		response[i] = LocationQueueItemResponse{
			OrderID:       item.OrderID.String(),
			OrderNumber:   item.OrderNumber,
			Client:        item.Client,
			Rush:          item.Rush,
			QueuePosition: item.QueuePosition,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// workflowParams pulls the actor and the order/location path pair shared by
// the per-location workflow endpoints. On failure the error response has
// already been written and ok is false.
func workflowParams(ctx echo.Context) (actor kernel.Actor, orderID, locationID kernel.UUID, ok bool) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		_ = unauthorized(ctx, "missing identity")
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, false
	}
	orderID, err = pathUUID(ctx, "orderID")
	if err != nil {
		_ = badRequest(ctx, "invalid order id")
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, false
	}
	locationID, err = pathUUID(ctx, "locationID")
	if err != nil {
		_ = badRequest(ctx, "invalid location id")
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, false
	}
	return actor, orderID, locationID, true
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// commandError maps a failed command onto the HTTP status carrying it.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrActorNotPermitted):
		return jsonError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, worklog.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrQuantityExceedsTotal),
		errors.Is(err, worklog.ErrInvalidQuantity),
		errors.Is(err, services.ErrQueuePositionOutOfRange):
		return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return internalError(ctx, "command failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusInternalServerError, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
