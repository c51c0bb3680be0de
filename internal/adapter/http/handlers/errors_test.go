package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"retifica_os/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid id", usecase.ErrInvalidOrderID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid stage", usecase.ErrInvalidStage, http.StatusBadRequest, "INVALID_STAGE"},
		{"wrapped not found", fmt.Errorf("load: %w", usecase.ErrOrderNotFound), http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"service not found", usecase.ErrServiceNotFound, http.StatusNotFound, "SERVICE_NOT_FOUND"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"in flight", usecase.ErrSaveInProgress, http.StatusConflict, "SAVE_IN_PROGRESS"},
		{"busy", &usecase.RejectionError{Cause: usecase.ErrEmployeeBusy, Message: "busy"}, http.StatusConflict, "EMPLOYEE_BUSY"},
		{"prerequisite", &usecase.RejectionError{Cause: usecase.ErrStagePrerequisite, Message: "x"}, http.StatusUnprocessableEntity, "STAGE_PREREQUISITE"},
		{"unknown rejection", &usecase.RejectionError{Cause: errors.New("other"), Message: "x"}, http.StatusUnprocessableEntity, "ACTION_REJECTED"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
