package handlers

import (
	"net/http"
	"strconv"

	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	monitor          usecase.IDelayMonitor
	defaultThreshold float64
}

// NewAlertHandler uses defaultThreshold when the request does not pass one.
func NewAlertHandler(monitor usecase.IDelayMonitor, defaultThreshold float64) *AlertHandler {
	if defaultThreshold <= 0 {
		defaultThreshold = usecase.DefaultDelayThresholdDays
	}
	return &AlertHandler{monitor: monitor, defaultThreshold: defaultThreshold}
}

// DelayedAlerts godoc
// @Summary      Delayed garments and batches
// @Tags         alerts
// @Produce      json
// @Param        client_id       query     string  false  "Client filter"
// @Param        threshold_days  query     number  false  "Days in system before a garment counts as delayed"
// @Success      200  {object}  response.DelayReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /alerts/delayed [get]
func (h *AlertHandler) DelayedAlerts(c *gin.Context) {
	threshold := h.defaultThreshold
	if raw := c.Query("threshold_days"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeInvalidPayload(c)
			return
		}
		threshold = v
	}

	report, err := h.monitor.Alerts(c.Request.Context(), c.Query("client_id"), threshold)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDelayReport(report))
}
