package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buslink/internal/repositories"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetRouteStore(repositories.NewMemoryRouteStore())
	t.Cleanup(func() { SetRouteStore(nil) })

	r := gin.New()
	r.POST("/api/routes", CreateRoute)
	r.GET("/api/routes", GetRoutes)
	r.GET("/api/routes/:id", GetRouteByID)
	r.PUT("/api/routes/:id", UpdateRoute)
	r.DELETE("/api/routes/:id", DeleteRoute)
	r.GET("/api/routes/:id/seats", GetRouteSeats)
	r.POST("/api/routes/:id/seats/:seat/book", BookRouteSeat)
	r.POST("/api/routes/:id/seats/:seat/unbook", UnbookRouteSeat)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{"vendorId":1,"origin":"Jakarta","destination":"Bandung","capacity":40,"fare":120000}`

func TestRouteHandlersLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/routes", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/routes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listResp struct {
		Routes []struct {
			ID       int64 `json:"id"`
			Capacity int   `json:"capacity"`
		} `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listResp.Routes) != 1 || listResp.Routes[0].ID != 1 {
		t.Fatalf("unexpected list: %+v", listResp)
	}

	// book, then rebook the same seat
	w = doJSON(t, r, http.MethodPost, "/api/routes/1/seats/5/book", "")
	if w.Code != http.StatusOK {
		t.Fatalf("book: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/routes/1/seats/5/book", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("double book: expected 409, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/routes/1/seats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("seats: expected 200, got %d", w.Code)
	}
	var seatsResp struct {
		Seats []struct {
			Number int    `json:"number"`
			Status string `json:"status"`
		} `json:"seats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &seatsResp); err != nil {
		t.Fatalf("decode seats: %v", err)
	}
	if len(seatsResp.Seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seatsResp.Seats))
	}
	if seatsResp.Seats[4].Status != "booked" {
		t.Fatalf("seat 5 should be booked, got %q", seatsResp.Seats[4].Status)
	}

	w = doJSON(t, r, http.MethodPost, "/api/routes/1/seats/5/unbook", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unbook: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/routes/1/seats/5/unbook", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("double unbook: expected 409, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/routes/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/routes/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestRouteHandlersValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/routes", `{"origin":"Jakarta"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/routes/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/routes/99/seats", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("seats of missing route: expected 404, got %d", w.Code)
	}

	// out-of-range seat rejected before touching state
	if w := doJSON(t, r, http.MethodPost, "/api/routes", createBody); w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/routes/1/seats/41/book", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range seat: expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRouteHandlersStatusUpdate(t *testing.T) {
	r := newTestRouter(t)
	if w := doJSON(t, r, http.MethodPost, "/api/routes", createBody); w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPut, "/api/routes/1", `{"status":"paused"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad status: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/routes/1", `{"status":"cancelled","fare":150000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var route struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
		Fare   int64  `json:"fare"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &route); err != nil {
		t.Fatalf("decode route: %v", err)
	}
	if route.ID != 1 || route.Status != "cancelled" || route.Fare != 150000 {
		t.Fatalf("unexpected route after update: %+v", route)
	}
}
