package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	request "retifica_os/internal/adapter/http/dto/request"
	response "retifica_os/internal/adapter/http/dto/response"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/timer"
	"retifica_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

type stageAction func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, body request.StageActionRequest) (entities.Order, error)

// StageHandler drives the stage state machine, its timer and the stage
// responsible picker.
type StageHandler struct {
	stages     usecase.IStageUseCase
	assignment usecase.IAssignmentUseCase
	tick       time.Duration
	now        func() time.Time
}

func NewStageHandler(stages usecase.IStageUseCase, assignment usecase.IAssignmentUseCase, tick time.Duration) *StageHandler {
	return &StageHandler{stages: stages, assignment: assignment, tick: tick, now: time.Now}
}

func (h *StageHandler) Start(c *gin.Context) {
	h.run(c, func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, body request.StageActionRequest) (entities.Order, error) {
		return h.stages.Start(ctx, sess, orderID, key, body.Responsible())
	})
}

func (h *StageHandler) Pause(c *gin.Context) {
	h.run(c, func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, body request.StageActionRequest) (entities.Order, error) {
		return h.stages.Pause(ctx, sess, orderID, key, body.Reason)
	})
}

func (h *StageHandler) Resume(c *gin.Context) {
	h.run(c, func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, _ request.StageActionRequest) (entities.Order, error) {
		return h.stages.Resume(ctx, sess, orderID, key)
	})
}

// Complete finishes the running timer and marks the key completed.
func (h *StageHandler) Complete(c *gin.Context) {
	h.run(c, func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, body request.StageActionRequest) (entities.Order, error) {
		return h.stages.Complete(ctx, sess, orderID, key, body.Responsible())
	})
}

func (h *StageHandler) Reopen(c *gin.Context) {
	h.run(c, func(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, _ request.StageActionRequest) (entities.Order, error) {
		return h.stages.Reopen(ctx, sess, orderID, key)
	})
}

func (h *StageHandler) run(c *gin.Context, action stageAction) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	key, err := request.ParseStageKey(c.Param("stage"), c.Query("service_type"))
	if err != nil {
		writeAppError(c, errInvalidStage)
		return
	}
	var body request.StageActionRequest
	if err := bindOptionalJSON(c, &body); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}

	o, err := action(c.Request.Context(), sess, c.Param("id"), key, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.now()))
}

func (h *StageHandler) Timer(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromTimerView(view.Timer))
}

func (h *StageHandler) Progress(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromStageProgress(view))
}

// StreamTimer pushes a "tick" event with the timer every tick until the
// client leaves or the timer finishes.
func (h *StageHandler) StreamTimer(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	orderID, key := c.Param("id"), view.Key

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("tick", response.FromTimerView(view.Timer))
	c.Writer.Flush()
	if view.Timer.State == timer.StateFinished {
		return
	}

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	ctx := c.Request.Context()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		v, err := h.stages.View(ctx, orderID, key)
		if err != nil {
			c.SSEvent("error", mapError(err).ToHTTPError())
			return false
		}
		c.SSEvent("tick", response.FromTimerView(v.Timer))
		return v.Timer.State != timer.StateFinished
	})
}

func (h *StageHandler) view(c *gin.Context) (usecase.StageView, bool) {
	key, err := request.ParseStageKey(c.Param("stage"), c.Query("service_type"))
	if err != nil {
		writeAppError(c, errInvalidStage)
		return usecase.StageView{}, false
	}
	view, err := h.stages.View(c.Request.Context(), c.Param("id"), key)
	if err != nil {
		writeError(c, err)
		return usecase.StageView{}, false
	}
	return view, true
}

// AssignResponsible sets the stage responsible. With debounce the write is
// deferred and coalesced, and 202 is returned; a deferred write that fails
// shows up in the notices of the next GET /orders/{id}.
func (h *StageHandler) AssignResponsible(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	key, err := request.ParseStageKey(c.Param("stage"), c.Query("service_type"))
	if err != nil {
		writeAppError(c, errInvalidStage)
		return
	}
	assign(c, h.assignment, sess, usecase.StageTarget(key), h.now)
}

func (h *StageHandler) RemoveResponsible(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	key, err := request.ParseStageKey(c.Param("stage"), c.Query("service_type"))
	if err != nil {
		writeAppError(c, errInvalidStage)
		return
	}
	o, err := h.assignment.Remove(c.Request.Context(), sess, c.Param("id"), usecase.StageTarget(key))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.now()))
}

func assign(c *gin.Context, uc usecase.IAssignmentUseCase, sess entities.Session, target usecase.Target, now func() time.Time) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	orderID := c.Param("id")

	if payload.Debounce {
		uc.AssignDebounced(sess, orderID, target, payload.EmployeeID)
		c.Status(http.StatusAccepted)
		return
	}
	o, err := uc.Assign(c.Request.Context(), sess, orderID, target, payload.EmployeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, now()))
}

// bindOptionalJSON binds the body when one was sent.
func bindOptionalJSON(c *gin.Context, v any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
