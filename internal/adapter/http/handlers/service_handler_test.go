package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"retifica_os/internal/adapter/http/dto/response"
	"retifica_os/internal/adapter/http/handlers/mocks"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase"

	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	services   *mocks.MockIServiceUseCase
	assignment *mocks.MockIAssignmentUseCase
}

func newServiceRouter(t *testing.T, sess entities.Session) (serviceMocks, http.Handler) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		services:   mocks.NewMockIServiceUseCase(ctrl),
		assignment: mocks.NewMockIAssignmentUseCase(ctrl),
	}
	h := NewServiceHandler(m.services, m.assignment)
	h.now = fixedNow

	r := newRouter(sess)
	g := r.Group("/v1/orders/:id/services/:type")
	g.POST("/complete", h.Complete)
	g.POST("/reopen", h.Reopen)
	g.PUT("/responsible", h.AssignResponsible)
	g.DELETE("/responsible", h.RemoveResponsible)
	g.POST("/subtasks", h.AddSubtask)
	g.PATCH("/subtasks/:subtask_id", h.PatchSubtask)
	g.GET("/progress", h.Progress)
	return m, r
}

func TestServiceHandler_Subtasks(t *testing.T) {
	t.Run("unknown service type", func(t *testing.T) {
		_, r := newServiceRouter(t, techSess)
		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/turbina/subtasks/s1", `{"completed":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		_, r := newServiceRouter(t, techSess)
		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/bloco/subtasks/s1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		o := bloco("os-1")
		o.Services[0].Subtasks[0].Completed = true
		m.services.EXPECT().ToggleSubtask(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "s1", true).Return(o, nil)

		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/bloco/subtasks/s1", `{"completed":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if s := got.Services[0]; s.Percentage != 100 || !s.CompletionEligible || s.Completed {
			t.Fatalf("unexpected service: %+v", s)
		}
	})

	t.Run("select then complete", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		gomock.InOrder(
			m.services.EXPECT().SelectSubtask(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "s2", true).Return(bloco("os-1"), nil),
			m.services.EXPECT().ToggleSubtask(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "s2", true).Return(bloco("os-1"), nil),
		)
		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/bloco/subtasks/s2", `{"selected":true,"completed":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("select failure skips toggle", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().SelectSubtask(gomock.Any(), gomock.Any(), "os-1", entities.ServiceBloco, "sx", false).Return(entities.Order{}, usecase.ErrSubtaskNotFound)
		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/bloco/subtasks/sx", `{"selected":false,"completed":false}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unselected item", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().ToggleSubtask(gomock.Any(), gomock.Any(), "os-1", entities.ServiceBloco, "s3", true).
			Return(entities.Order{}, &usecase.RejectionError{Cause: usecase.ErrSubtaskNotSelected, Message: usecase.ErrSubtaskNotSelected.Error()})
		w := do(r, http.MethodPatch, "/v1/orders/os-1/services/bloco/subtasks/s3", `{"completed":true}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("add", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().AddSubtask(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "Brunir", 1.5).Return(bloco("os-1"), nil)
		w := do(r, http.MethodPost, "/v1/orders/os-1/services/bloco/subtasks", `{"name":"Brunir","estimated_hours":1.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add negative estimate", func(t *testing.T) {
		_, r := newServiceRouter(t, techSess)
		w := do(r, http.MethodPost, "/v1/orders/os-1/services/bloco/subtasks", `{"name":"Brunir","estimated_hours":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceHandler_Completion(t *testing.T) {
	t.Run("incomplete checklist", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().Complete(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "").
			Return(entities.Order{}, &usecase.RejectionError{Cause: usecase.ErrSubtasksIncomplete, Message: usecase.ErrSubtasksIncomplete.Error()})
		w := do(r, http.MethodPost, "/v1/orders/os-1/services/bloco/complete", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeError(t, w).Error.Code; code != "SUBTASKS_INCOMPLETE" {
			t.Fatalf("expected SUBTASKS_INCOMPLETE, got %s", code)
		}
	})

	t.Run("complete with responsible", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().Complete(gomock.Any(), techSess, "os-1", entities.ServiceBloco, "e1").Return(bloco("os-1"), nil)
		w := do(r, http.MethodPost, "/v1/orders/os-1/services/bloco/complete", `{"responsible_id":"e1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reopen forbidden", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		m.services.EXPECT().Reopen(gomock.Any(), techSess, "os-1", entities.ServiceBiela).Return(entities.Order{}, usecase.ErrForbidden)
		w := do(r, http.MethodPost, "/v1/orders/os-1/services/biela/reopen", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("progress", func(t *testing.T) {
		m, r := newServiceRouter(t, techSess)
		svc := bloco("os-1").Services[0]
		m.services.EXPECT().View(gomock.Any(), "os-1", entities.ServiceBloco).Return(usecase.NewServiceView(svc), nil)
		w := do(r, http.MethodGet, "/v1/orders/os-1/services/bloco/progress", "")
		var got response.ServiceProgressResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Type != "bloco" || got.Percentage != 0 {
			t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
		}
	})

	t.Run("responsible", func(t *testing.T) {
		m, r := newServiceRouter(t, adminSess)
		target := usecase.ServiceTarget(entities.ServiceBloco)
		m.assignment.EXPECT().Assign(gomock.Any(), adminSess, "os-1", target, "e1").Return(bloco("os-1"), nil)
		m.assignment.EXPECT().Remove(gomock.Any(), adminSess, "os-1", target).Return(bloco("os-1"), nil)
		if w := do(r, http.MethodPut, "/v1/orders/os-1/services/bloco/responsible", `{"employee_id":"e1"}`); w.Code != http.StatusOK {
			t.Fatalf("assign: expected 200, got %d", w.Code)
		}
		if w := do(r, http.MethodDelete, "/v1/orders/os-1/services/bloco/responsible", ""); w.Code != http.StatusOK {
			t.Fatalf("remove: expected 200, got %d", w.Code)
		}
	})
}
