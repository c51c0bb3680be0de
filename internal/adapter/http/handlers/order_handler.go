package handlers

import (
	"net/http"
	"strings"
	"time"

	request "retifica_os/internal/adapter/http/dto/request"
	response "retifica_os/internal/adapter/http/dto/response"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase"
	"retifica_os/pkg"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidStatus       = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
)

// OrderHandler serves the order document and the read-only catalogs.
type OrderHandler struct {
	usecase    usecase.IOrderUseCase
	assignment usecase.IAssignmentUseCase
	now        func() time.Time
}

func NewOrderHandler(uc usecase.IOrderUseCase, assignment usecase.IAssignmentUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, assignment: assignment, now: time.Now}
}

// CreateOrder godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param payload body request.CreateOrderRequest true "order"
// @Success 201 {object} response.OrderResponse
// @Router /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), sess, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o, h.now()))
}

// ListOrders godoc
// @Summary List orders, newest first
// @Tags orders
// @Produce json
// @Param status query string false "filter by status"
// @Success 200 {array} response.OrderSummaryResponse
// @Router /v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := entities.OrderStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !status.Valid() {
		writeAppError(c, errInvalidStatus)
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(orders, func(o entities.Order, _ int) response.OrderSummaryResponse {
		return response.FromOrderSummary(o)
	}))
}

// GetOrder godoc
// @Summary Get an order with derived progress and timers
// @Description Notices list debounced responsible changes that could not be saved since the last read.
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} response.OrderResponse
// @Router /v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := response.FromOrder(o, h.now())
	resp.Notices = response.FromAutoSaveFailures(h.assignment.AutoSaveFailures(o.ID))
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary Move an order to another lifecycle status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param payload body request.UpdateStatusRequest true "status"
// @Success 200 {object} response.OrderResponse
// @Router /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	status, valid := payload.ResolveStatus()
	if !valid {
		writeAppError(c, errInvalidStatus)
		return
	}

	o, err := h.usecase.UpdateStatus(c.Request.Context(), sess, c.Param("id"), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.now()))
}

// DeleteOrder godoc
// @Summary Delete an order and release its busy markers
// @Tags orders
// @Param id path string true "order id"
// @Success 204
// @Router /v1/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPresets godoc
// @Summary Sub-task presets for a service type
// @Tags catalog
// @Produce json
// @Param type path string true "service type"
// @Success 200 {array} response.PresetResponse
// @Router /v1/subtask-presets/{type} [get]
func (h *OrderHandler) ListPresets(c *gin.Context) {
	t, valid := request.ParseServiceType(c.Param("type"))
	if !valid {
		writeAppError(c, errInvalidStage)
		return
	}
	presets, err := h.usecase.ListPresets(c.Request.Context(), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(presets, func(p entities.SubtaskPreset, _ int) response.PresetResponse {
		return response.FromPreset(p)
	}))
}

// PauseReasons godoc
// @Summary Preset pause reasons
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /v1/pause-reasons [get]
func (h *OrderHandler) PauseReasons(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.PauseReasons())
}
