package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	intconfig "buslink/internal/config"
	"buslink/internal/domain/models"
	"buslink/internal/http/middleware"
	"buslink/internal/repositories"
	"buslink/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	storeMu         sync.RWMutex
	routeStoreValue repositories.RouteStore
)

// SetRouteStore overrides the backing store; tests use the in-memory
// store, production leaves the MySQL repository in place.
func SetRouteStore(s repositories.RouteStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	routeStoreValue = s
}

func routeStore() repositories.RouteStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	if routeStoreValue != nil {
		return routeStoreValue
	}
	return repositories.RouteRepository{}
}

func routeService(c *gin.Context) services.RouteService {
	svc := services.RouteService{
		Store:     routeStore(),
		RequestID: middleware.GetRequestID(c),
	}
	if intconfig.DB != nil {
		tickets := repositories.TicketRepository{}
		svc.SeatPassengers = tickets.SeatPassengers
	}
	return svc
}

type routePayload struct {
	VendorID      int64    `json:"vendorId" binding:"required"`
	Origin        string   `json:"origin" binding:"required"`
	Destination   string   `json:"destination" binding:"required"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	DaysOfWeek    []string `json:"daysOfWeek"`
	Stops         []string `json:"stops"`
	Fare          int64    `json:"fare"`
	Capacity      int      `json:"capacity" binding:"required"`
	Status        string   `json:"status"`
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var req routePayload
	if !BindJSONOrError(c, &req) {
		return
	}

	route, err := routeService(c).Create(models.Route{
		VendorID:      req.VendorID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DaysOfWeek:    req.DaysOfWeek,
		Stops:         req.Stops,
		Fare:          req.Fare,
		Capacity:      req.Capacity,
		Status:        req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// GET /api/routes
func GetRoutes(c *gin.Context) {
	routes, err := routeService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// optional status / vendor filters for the dashboards
	status := strings.TrimSpace(c.Query("status"))
	vendorID, _ := strconv.ParseInt(strings.TrimSpace(c.Query("vendorId")), 10, 64)
	if status != "" || vendorID > 0 {
		filtered := routes[:0]
		for _, r := range routes {
			if status != "" && r.Status != status {
				continue
			}
			if vendorID > 0 && r.VendorID != vendorID {
				continue
			}
			filtered = append(filtered, r)
		}
		routes = filtered
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GET /api/routes/:id
func GetRouteByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	route, err := routeService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// PUT /api/routes/:id
func UpdateRoute(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.RoutePatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	route, err := routeService(c).Update(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// DELETE /api/routes/:id
func DeleteRoute(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	route, err := routeService(c).Delete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted", "route": route})
}

// GET /api/routes/:id/seats
func GetRouteSeats(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	seats, err := routeService(c).Seats(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routeId": id, "seats": seats})
}

// POST /api/routes/:id/seats/:seat/book
func BookRouteSeat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	seat, err := strconv.Atoi(strings.TrimSpace(c.Param("seat")))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid seat number", nil)
		return
	}

	route, err := routeService(c).BookSeat(id, seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/routes/:id/seats/:seat/unbook
func UnbookRouteSeat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	seat, err := strconv.Atoi(strings.TrimSpace(c.Param("seat")))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid seat number", nil)
		return
	}

	route, err := routeService(c).UnbookSeat(id, seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
