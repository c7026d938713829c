package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:order_id", h.getOrder)
		orders.PUT("/:order_id", h.updateOrder)
		orders.POST("/:order_id/complete", h.completeOrder)
		orders.GET("/:order_id/profit", h.getOrderProfit)
	}
}

func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create order")
		return
	}

	logger.Info("Order created",
		slog.String("order_id", order.OrderID),
		slog.String("client_id", order.ClientID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("order_id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, logger, err, "get order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("order_id")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) completeOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("order_id")

	var req dto.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CompleteOrder(c.Request.Context(), orderID, req.CompletionDate)
	if err != nil {
		respondServiceError(c, logger, err, "complete order")
		return
	}

	logger.Info("Order completed",
		slog.String("order_id", orderID),
		slog.String("completion_date", req.CompletionDate))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) getOrderProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("order_id")

	profit, err := h.orderService.GetOrderProfit(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, logger, err, "get order profit")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderProfitResponse(profit))
}
