package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retifica_os/internal/adapter/http/middleware"
	"retifica_os/internal/domain/entities"
	"retifica_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	t0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	adminSess = entities.Session{UserID: "adm", Name: "Ana", Role: entities.RoleAdmin}
	techSess  = entities.Session{UserID: "e1", Name: "Edu", Role: entities.RoleTechnician, Specialties: []entities.ServiceType{entities.ServiceBloco}}
)

func fixedNow() time.Time { return t0 }

// newRouter returns an engine whose requests run as sess; a zero session
// leaves the request unauthenticated.
func newRouter(sess entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if sess.UserID != "" {
		r.Use(middleware.SetSession(sess))
	}
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var out pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return out
}

func bloco(id string) entities.Order {
	return entities.Order{
		ID:       id,
		Name:     "Motor AP",
		Priority: entities.PriorityMedia,
		Status:   entities.OrderStatusFabricacao,
		Services: []entities.Service{{
			Type: entities.ServiceBloco,
			Subtasks: []entities.SubAtividade{
				{ID: "s1", Name: "Plainar", Selected: true, EstimatedHours: 1},
			},
		}},
		Stages: map[string]entities.StageProgress{},
	}
}
