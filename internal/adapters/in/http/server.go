// Package http exposes order processing over a JSON API.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler

	// Query handlers
	listOrdersHandler     queries.ListOrdersQueryHandler
	getOrderDetailHandler queries.GetOrderDetailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		createProductHandler:     createProductHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderDetailHandler:    getOrderDetailHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrderDetail)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/products", s.CreateProduct)
}

// errorResponse maps a use case failure to an HTTP status. Only errors
// from the validation taxonomy carry their text to the client; anything
// unrecognized is reported as a generic server failure so raw storage
// errors never reach the client as the primary message.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	var message string

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = "Not found"
	case isCallerFault(err):
		status = http.StatusBadRequest
		message = "Invalid request: " + err.Error()
	default:
		status = http.StatusInternalServerError
		message = "Operation failed, safe to retry"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

// isCallerFault reports whether err describes invalid caller input,
// making its text safe to echo back.
func isCallerFault(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, commands.ErrCartIsEmpty) ||
		errors.Is(err, commands.ErrProductNameIsRequired) ||
		errors.Is(err, commands.ErrSupplierNameIsRequired) ||
		errors.Is(err, queries.ErrDateRangeIsInvalid)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	sessionCart := cart.NewCart()
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return errorResponse(ctx, itemErr)
		}
		if itemErr = sessionCart.Add(productID, item.Quantity); itemErr != nil {
			return errorResponse(ctx, itemErr)
		}
	}

	var shippingAddressID *kernel.UUID
	if request.ShippingAddressID != nil {
		addressID, addrErr := kernel.UUIDFromString(*request.ShippingAddressID)
		if addrErr != nil {
			return errorResponse(ctx, addrErr)
		}
		shippingAddressID = &addressID
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, sessionCart, shippingAddressID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{
		OrderID:     result.OrderID.String(),
		TotalAmount: result.TotalAmount.String(),
	})
}

// ListOrders handles GET /api/v1/orders - lists order summaries.
// Optional query parameters: search, from, to (RFC 3339 dates), status.
func (s *Server) ListOrders(ctx echo.Context) error {
	var dateFrom, dateTo *time.Time
	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("from", err))
		}
		dateFrom = &parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("to", err))
		}
		dateTo = &parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("search"), dateFrom, dateTo, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummary{
			OrderID:      summary.ID.String(),
			CustomerName: summary.CustomerName,
			OrderDate:    summary.OrderDate,
			TotalAmount:  summary.TotalAmount.StringFixed(2),
			Status:       summary.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetail handles GET /api/v1/orders/:orderId - full order view.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detailToResponse(detail))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummary{
		OrderID:      detail.ID.String(),
		CustomerName: detail.CustomerName,
		OrderDate:    detail.OrderDate,
		TotalAmount:  detail.TotalAmount.StringFixed(2),
		Status:       detail.Status,
	})
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request NewProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(request.CategoryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		request.Name,
		request.Description,
		price,
		request.StockQuantity,
		categoryID,
		request.SupplierName,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductCreatedResponse{
		ProductID: cmd.ProductID().String(),
	})
}

func detailToResponse(detail queries.OrderDetailResponse) OrderDetail {
	response := OrderDetail{
		OrderID:      detail.ID.String(),
		CustomerName: detail.CustomerName,
		OrderDate:    detail.OrderDate,
		TotalAmount:  detail.TotalAmount.StringFixed(2),
		Status:       detail.Status,
		Items:        make([]OrderItem, len(detail.Items)),
		History:      make([]StatusChange, len(detail.History)),
	}

	for i, item := range detail.Items {
		response.Items[i] = OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
		}
	}
	for i, change := range detail.History {
		response.History[i] = StatusChange{
			Status:     change.Status,
			OccurredAt: change.OccurredAt,
		}
	}

	if detail.Delivery != nil {
		response.Delivery = &Delivery{
			Status:       detail.Delivery.Status,
			DeliveryDate: detail.Delivery.DeliveryDate,
		}
	}
	if detail.Transaction != nil {
		response.Transaction = &Transaction{
			Amount:          detail.Transaction.Amount.StringFixed(2),
			Status:          detail.Transaction.Status,
			Method:          detail.Transaction.Method,
			TransactionDate: detail.Transaction.TransactionDate,
		}
	}
	if detail.ShippingAddress != nil {
		response.ShippingAddress = &ShippingAddress{
			Street:     detail.ShippingAddress.Street,
			City:       detail.ShippingAddress.City,
			State:      detail.ShippingAddress.State,
			PostalCode: detail.ShippingAddress.PostalCode,
			Country:    detail.ShippingAddress.Country,
		}
	}
	if detail.Discount != nil {
		response.Discount = &Discount{
			Code:    detail.Discount.Code,
			Percent: detail.Discount.Percent.String(),
		}
	}

	return response
}
