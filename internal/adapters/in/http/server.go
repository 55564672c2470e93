package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the marketplace over HTTP. It coordinates between echo
// handlers and application use cases; all authorization beyond coarse role
// checks lives in the command handlers and aggregates.
type Server struct {
	// Command handlers
	createAccountHandler   commands.CreateAccountCommandHandler
	createCourierHandler   commands.CreateCourierCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	assignCourierHandler   commands.AssignCourierCommandHandler
	setCourierShiftHandler commands.SetCourierShiftCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getCouriersHandler     queries.GetCouriersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createAccountHandler commands.CreateAccountCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	setCourierShiftHandler commands.SetCourierShiftCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
) *Server {
	return &Server{
		createAccountHandler:   createAccountHandler,
		createCourierHandler:   createCourierHandler,
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		assignCourierHandler:   assignCourierHandler,
		setCourierShiftHandler: setCourierShiftHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getCouriersHandler:     getCouriersHandler,
	}
}

// RegisterRoutes attaches every route to the echo instance. The health probe
// stays outside the access guard.
func (s *Server) RegisterRoutes(e *echo.Echo, guard AccessGuard) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", guard.Middleware)

	api.POST("/accounts", s.CreateAccount, RequireRoles(kernel.RoleSuperAdmin))

	api.POST("/couriers", s.CreateCourier, RequireRoles(kernel.RoleSuperAdmin))
	api.GET("/couriers", s.GetCouriers,
		RequireRoles(kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin))
	api.POST("/couriers/:id/shift", s.SetCourierShift,
		RequireRoles(kernel.RoleCourier, kernel.RoleSuperAdmin))

	api.POST("/orders", s.CreateOrder, RequireRoles(kernel.RoleCustomer))
	api.GET("/orders/active", s.GetActiveOrders,
		RequireRoles(kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin))
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.TransitionOrder)
	api.POST("/orders/:id/courier", s.AssignCourier,
		RequireRoles(kernel.RoleRestaurantAdmin, kernel.RoleSuperAdmin))
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateAccount handles POST /api/v1/accounts - registers an account.
func (s *Server) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	accountID, err := kernel.UUIDFromBytes(req.ID[:])
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}
	role, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return badRequest(c, "Unknown role: "+req.Role)
	}

	restaurantIDs := make([]kernel.UUID, 0, len(req.RestaurantIDs))
	for _, raw := range req.RestaurantIDs {
		restaurantID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return badRequest(c, "Invalid restaurant ID")
		}
		restaurantIDs = append(restaurantIDs, restaurantID)
	}

	cmd, err := commands.NewCreateAccountCommand(accountID, req.Name, role, req.Token, restaurantIDs)
	if err != nil {
		return badRequest(c, "Invalid account data: "+err.Error())
	}

	if err = s.createAccountHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// CreateCourier handles POST /api/v1/couriers - registers a courier.
// The courier ID must match the courier's account ID.
func (s *Server) CreateCourier(c echo.Context) error {
	var req CreateCourierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(req.ID[:])
	if err != nil {
		return badRequest(c, "Invalid courier ID")
	}

	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name, req.Phone)
	if err != nil {
		return badRequest(c, "Invalid courier data: "+err.Error())
	}

	if err = s.createCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// GetCouriers handles GET /api/v1/couriers - lists the courier pool.
// ?on_shift=true narrows the listing to couriers currently on shift.
func (s *Server) GetCouriers(c echo.Context) error {
	onShiftOnly := c.QueryParam("on_shift") == "true"
	query := queries.NewGetCouriersQuery(onShiftOnly)

	couriers, err := s.getCouriersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = CourierResponse{
			ID:      courier.ID.Bytes(),
			Name:    courier.Name,
			Phone:   courier.Phone,
			OnShift: courier.OnShift,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// SetCourierShift handles POST /api/v1/couriers/:id/shift - toggles shift state.
func (s *Server) SetCourierShift(c echo.Context) error {
	courierID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid courier ID")
	}

	var req SetShiftRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierShiftCommand(courierID, req.OnShift, actorFrom(c))
	if err != nil {
		return badRequest(c, "Invalid shift data: "+err.Error())
	}

	if err = s.setCourierShiftHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated customer.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(req.RestaurantID[:])
	if err != nil {
		return badRequest(c, "Invalid restaurant ID")
	}
	address, err := kernel.NewAddress(req.Street, req.Note)
	if err != nil {
		return badRequest(c, "Invalid address: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		productID, idErr := kernel.UUIDFromBytes(line.ProductID[:])
		if idErr != nil {
			return badRequest(c, "Invalid product ID")
		}
		item, itemErr := order.NewItem(productID, line.Name, line.Quantity, line.UnitPrice)
		if itemErr != nil {
			return badRequest(c, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, restaurantID, actorFrom(c).ID(), address, items)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - the in-flight order
// board. Restaurant admins see only their own restaurants.
func (s *Server) GetActiveOrders(c echo.Context) error {
	actor := actorFrom(c)

	responses := make([]ActiveOrderResponse, 0)
	if actor.Role() == kernel.RoleRestaurantAdmin {
		for _, restaurantID := range actor.RestaurantIDs() {
			query, err := queries.NewGetActiveOrdersQuery(&restaurantID)
			if err != nil {
				return errorResponse(c, err)
			}
			orders, err := s.getActiveOrdersHandler.Handle(c.Request().Context(), query)
			if err != nil {
				return errorResponse(c, err)
			}
			for _, o := range orders {
				responses = append(responses, activeOrderResponseFrom(o))
			}
		}
		return c.JSON(http.StatusOK, responses)
	}

	query, err := queries.NewGetActiveOrdersQuery(nil)
	if err != nil {
		return errorResponse(c, err)
	}
	orders, err := s.getActiveOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}
	for _, o := range orders {
		responses = append(responses, activeOrderResponseFrom(o))
	}
	return c.JSON(http.StatusOK, responses)
}

// GetOrder handles GET /api/v1/orders/:id - one order with its lines.
// Visibility: the ordering customer, an admin of the order's restaurant,
// the assigned courier, or a super admin.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	if !mayViewOrder(actorFrom(c), resp) {
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Order belongs to somebody else",
		})
	}
	return c.JSON(http.StatusOK, orderResponseFrom(resp))
}

// TransitionOrder handles POST /api/v1/orders/:id/status - moves an order
// along its lifecycle. Fine-grained permission checks run in the aggregate.
func (s *Server) TransitionOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	var req TransitionOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actorFrom(c))
	if err != nil {
		return badRequest(c, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:id/courier - assigns an
// on-shift courier to a confirmed order.
func (s *Server) AssignCourier(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	var req AssignCourierRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	courierID, err := kernel.UUIDFromBytes(req.CourierID[:])
	if err != nil {
		return badRequest(c, "Invalid courier ID")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actorFrom(c))
	if err != nil {
		return badRequest(c, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mayViewOrder(actor *account.Account, resp queries.GetOrderQueryResponse) bool {
	switch actor.Role() {
	case kernel.RoleSuperAdmin:
		return true
	case kernel.RoleCustomer:
		return actor.ID().IsEqual(resp.CustomerID)
	case kernel.RoleRestaurantAdmin:
		return actor.OwnsRestaurant(resp.RestaurantID)
	case kernel.RoleCourier:
		return resp.CourierID != nil && actor.ID().IsEqual(*resp.CourierID)
	default:
		return false
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case failures onto HTTP statuses. Conflicts cover
// both lifecycle violations and lost concurrent updates.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrUnauthorizedTransition),
		errors.Is(err, commands.ErrOrderAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPreconditionFailed),
		errors.Is(err, order.ErrCourierNotAssignable),
		errors.Is(err, commands.ErrCourierNotOnShift),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
