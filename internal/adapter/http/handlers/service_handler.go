package handlers

import (
	"net/http"
	"time"

	request "retifica_os/internal/adapter/http/dto/request"
	response "retifica_os/internal/adapter/http/dto/response"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase"
	"retifica_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubtaskPayload = pkg.NewDomainErrorSimple("INVALID_SUBTASK_INPUT", "Invalid sub-task payload", http.StatusBadRequest)

// ServiceHandler serves a service's checklist, completion and responsible.
type ServiceHandler struct {
	services   usecase.IServiceUseCase
	assignment usecase.IAssignmentUseCase
	now        func() time.Time
}

func NewServiceHandler(services usecase.IServiceUseCase, assignment usecase.IAssignmentUseCase) *ServiceHandler {
	return &ServiceHandler{services: services, assignment: assignment, now: time.Now}
}

func (h *ServiceHandler) serviceType(c *gin.Context) (entities.ServiceType, bool) {
	t, valid := request.ParseServiceType(c.Param("type"))
	if !valid {
		writeAppError(c, errInvalidStage)
	}
	return t, valid
}

func (h *ServiceHandler) respond(c *gin.Context, status int, o entities.Order, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.FromOrder(o, h.now()))
}

// Complete requires every selected sub-task to be done and a responsible.
func (h *ServiceHandler) Complete(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	var body request.StageActionRequest
	if err := bindOptionalJSON(c, &body); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	o, err := h.services.Complete(c.Request.Context(), sess, c.Param("id"), t, body.Responsible())
	h.respond(c, http.StatusOK, o, err)
}

func (h *ServiceHandler) Reopen(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	o, err := h.services.Reopen(c.Request.Context(), sess, c.Param("id"), t)
	h.respond(c, http.StatusOK, o, err)
}

func (h *ServiceHandler) AddSubtask(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	var payload request.AddSubtaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.EstimatedHours < 0 {
		writeAppError(c, errInvalidSubtaskPayload)
		return
	}
	o, err := h.services.AddSubtask(c.Request.Context(), sess, c.Param("id"), t, payload.Name, payload.EstimatedHours)
	h.respond(c, http.StatusCreated, o, err)
}

// PatchSubtask applies selection before completion when both are sent.
func (h *ServiceHandler) PatchSubtask(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	var payload request.PatchSubtaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Validate() != nil {
		writeAppError(c, errInvalidSubtaskPayload)
		return
	}

	ctx, orderID, subtaskID := c.Request.Context(), c.Param("id"), c.Param("subtask_id")
	var (
		o   entities.Order
		err error
	)
	if payload.Selected != nil {
		if o, err = h.services.SelectSubtask(ctx, sess, orderID, t, subtaskID, *payload.Selected); err != nil {
			writeError(c, err)
			return
		}
	}
	if payload.Completed != nil {
		o, err = h.services.ToggleSubtask(ctx, sess, orderID, t, subtaskID, *payload.Completed)
	}
	h.respond(c, http.StatusOK, o, err)
}

func (h *ServiceHandler) Progress(c *gin.Context) {
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	view, err := h.services.View(c.Request.Context(), c.Param("id"), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceProgress(view))
}

func (h *ServiceHandler) AssignResponsible(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	assign(c, h.assignment, sess, usecase.ServiceTarget(t), h.now)
}

func (h *ServiceHandler) RemoveResponsible(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	t, ok := h.serviceType(c)
	if !ok {
		return
	}
	o, err := h.assignment.Remove(c.Request.Context(), sess, c.Param("id"), usecase.ServiceTarget(t))
	h.respond(c, http.StatusOK, o, err)
}
