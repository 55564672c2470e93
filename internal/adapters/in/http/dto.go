package http

import (
	"marketplace/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The customer is
// taken from the access token, never from the body.
type CreateOrderRequest struct {
	RestaurantID uuid.UUID          `json:"restaurant_id"`
	Street       string             `json:"street"`
	Note         string             `json:"note"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// CreateOrderResponse returns the identifier of the placed order.
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:id/status.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// AssignCourierRequest is the body of POST /api/v1/orders/:id/courier.
type AssignCourierRequest struct {
	CourierID uuid.UUID `json:"courier_id"`
}

// CreateCourierRequest is the body of POST /api/v1/couriers. The ID must be
// the courier's account ID so shift toggles and notifications line up.
type CreateCourierRequest struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// SetShiftRequest is the body of POST /api/v1/couriers/:id/shift.
type SetShiftRequest struct {
	OnShift bool `json:"on_shift"`
}

// CreateAccountRequest is the body of POST /api/v1/accounts.
type CreateAccountRequest struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Role          string      `json:"role"`
	Token         string      `json:"token"`
	RestaurantIDs []uuid.UUID `json:"restaurant_ids"`
}

// OrderResponse is the representation of one order with its lines.
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	RestaurantID uuid.UUID           `json:"restaurant_id"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	CourierID    *uuid.UUID          `json:"courier_id,omitempty"`
	Street       string              `json:"street"`
	Note         string              `json:"note,omitempty"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	Total        int64               `json:"total"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// ActiveOrderResponse is one row of the active order board.
type ActiveOrderResponse struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	CourierID    *uuid.UUID `json:"courier_id,omitempty"`
	Street       string     `json:"street"`
	Status       string     `json:"status"`
}

// CourierResponse is one courier in the pool listing.
type CourierResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	OnShift bool      `json:"on_shift"`
}

func orderResponseFrom(resp queries.GetOrderQueryResponse) OrderResponse {
	var courierID *uuid.UUID
	if resp.CourierID != nil {
		raw := resp.CourierID.Bytes()
		courierID = &raw
	}

	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return OrderResponse{
		ID:           resp.ID.Bytes(),
		RestaurantID: resp.RestaurantID.Bytes(),
		CustomerID:   resp.CustomerID.Bytes(),
		CourierID:    courierID,
		Street:       resp.Street,
		Note:         resp.Note,
		Status:       resp.Status,
		Items:        items,
		Total:        resp.Total,
	}
}

func activeOrderResponseFrom(resp queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	var courierID *uuid.UUID
	if resp.CourierID != nil {
		raw := resp.CourierID.Bytes()
		courierID = &raw
	}

	return ActiveOrderResponse{
		ID:           resp.ID.Bytes(),
		RestaurantID: resp.RestaurantID.Bytes(),
		CourierID:    courierID,
		Street:       resp.Street,
		Status:       resp.Status,
	}
}
