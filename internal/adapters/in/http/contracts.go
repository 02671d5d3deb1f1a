package http

import "time"

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	OrderNumber     string    `json:"order_number"`
	ReferenceNumber string    `json:"reference_number"`
	Client          string    `json:"client"`
	DueDate         time.Time `json:"due_date"`
	TotalQuantity   int       `json:"total_quantity"`
	Rush            bool      `json:"rush"`
}

type CreateOrderResponse struct {
	ID string `json:"id"`
}

type EditOrderRequest struct {
	Client        string    `json:"client"`
	DueDate       time.Time `json:"due_date"`
	TotalQuantity int       `json:"total_quantity"`
	Rush          bool      `json:"rush"`
}

type ShipOrderRequest struct {
	Quantity int `json:"quantity"`
}

// QuantityRequest carries the completed quantity for finish and
// update-quantity endpoints.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type GlobalQueuePositionRequest struct {
	Position int `json:"position"`
}

type RequestHelpRequest struct {
	Notes string `json:"notes"`
}

type OrderBoardLocationResponse struct {
	LocationID        string   `json:"location_id"`
	LocationName      string   `json:"location_name"`
	Status            string   `json:"status"`
	QueuePosition     *int     `json:"queue_position,omitempty"`
	CompletedQuantity int      `json:"completed_quantity"`
	EffectiveQuantity *float64 `json:"effective_quantity,omitempty"`
}

type OrderBoardItemResponse struct {
	ID                  string                       `json:"id"`
	OrderNumber         string                       `json:"order_number"`
	ReferenceNumber     string                       `json:"reference_number,omitempty"`
	Client              string                       `json:"client"`
	DueDate             time.Time                    `json:"due_date"`
	TotalQuantity       int                          `json:"total_quantity"`
	ShippedQuantity     int                          `json:"shipped_quantity"`
	PartiallyShipped    bool                         `json:"partially_shipped"`
	Rush                bool                         `json:"rush"`
	GlobalQueuePosition *int                         `json:"global_queue_position,omitempty"`
	Completion          int                          `json:"completion"`
	Readiness           string                       `json:"readiness"`
	Locations           []OrderBoardLocationResponse `json:"locations"`
}

type LocationQueueItemResponse struct {
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number"`
	Client        string `json:"client"`
	Rush          bool   `json:"rush"`
	QueuePosition int    `json:"queue_position"`
}

type NeededOrderResponse struct {
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	Client       string    `json:"client"`
	DueDate      time.Time `json:"due_date"`
	Rush         bool      `json:"rush"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
}

type AuditEntryResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	ActorID    *string   `json:"actor_id,omitempty"`
	LocationID *string   `json:"location_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}
