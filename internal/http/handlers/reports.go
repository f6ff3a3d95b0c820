package handlers

import (
	"net/http"

	intconfig "buslink/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/summary
// Aggregates the admin dashboard reads: routes and tickets by status,
// seats sold per vendor.
func GetSummaryReport(c *gin.Context) {
	db := intconfig.DB
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}

	routesByStatus := map[string]int64{}
	rows, err := db.Query(`SELECT status, COUNT(*) FROM routes GROUP BY status`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate routes: " + err.Error()})
		return
	}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan route counts: " + err.Error()})
			return
		}
		routesByStatus[status] = count
	}
	rows.Close()

	ticketsByStatus := map[string]int64{}
	rows, err = db.Query(`SELECT status, COUNT(*) FROM tickets GROUP BY status`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate tickets: " + err.Error()})
		return
	}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan ticket counts: " + err.Error()})
			return
		}
		ticketsByStatus[status] = count
	}
	rows.Close()

	type vendorSales struct {
		VendorID  int64 `json:"vendorId"`
		SeatsSold int64 `json:"seatsSold"`
	}
	sales := []vendorSales{}
	rows, err = db.Query(`
		SELECT vendor_id, COUNT(*) FROM tickets
		WHERE status IN ('pending', 'confirmed')
		GROUP BY vendor_id
		ORDER BY vendor_id ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate sales: " + err.Error()})
		return
	}
	defer rows.Close()
	for rows.Next() {
		var v vendorSales
		if err := rows.Scan(&v.VendorID, &v.SeatsSold); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan sales: " + err.Error()})
			return
		}
		sales = append(sales, v)
	}

	c.JSON(http.StatusOK, gin.H{
		"routesByStatus":    routesByStatus,
		"ticketsByStatus":   ticketsByStatus,
		"seatsSoldByVendor": sales,
	})
}
