package handlers

import (
	"net/http"

	response "retifica_os/internal/adapter/http/dto/response"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type EmployeeHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewEmployeeHandler(uc usecase.IAssignmentUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

// ListEmployees returns the roster with each employee's availability.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	statuses, err := h.usecase.ListEmployees(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(statuses, func(s entities.EmployeeStatus, _ int) response.EmployeeResponse {
		return response.FromEmployeeStatus(s)
	}))
}
