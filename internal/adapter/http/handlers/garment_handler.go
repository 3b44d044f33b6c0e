package handlers

import (
	"net/http"

	request "lavanderia_rfid/internal/adapter/http/dto/request"
	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GarmentHandler serves garment queries and status changes.
type GarmentHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewGarmentHandler(uc usecase.ILifecycleUseCase) *GarmentHandler {
	return &GarmentHandler{usecase: uc}
}

// ListGarments godoc
// @Summary      List garments
// @Tags         garments
// @Produce      json
// @Param        client_id  query     string  false  "Client filter"
// @Success      200  {array}   response.GarmentResponse
// @Router       /garments [get]
func (h *GarmentHandler) ListGarments(c *gin.Context) {
	list, err := h.usecase.ListGarments(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGarments(list))
}

// GetGarment godoc
// @Summary      Get a garment
// @Tags         garments
// @Produce      json
// @Param        id   path      string  true  "Garment ID"
// @Success      200  {object}  response.GarmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /garments/{id} [get]
func (h *GarmentHandler) GetGarment(c *gin.Context) {
	g, err := h.usecase.GetGarment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGarment(g))
}

// GetHistory godoc
// @Summary      Garment audit trail
// @Tags         garments
// @Produce      json
// @Param        id   path      string  true  "Garment ID"
// @Success      200  {array}   response.HistoryEntryResponse
// @Router       /garments/{id}/history [get]
func (h *GarmentHandler) GetHistory(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}

// ChangeStatus godoc
// @Summary      Change the status of one garment
// @Tags         garments
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Garment ID"
// @Param        payload  body      request.StatusChangeRequest  true  "New status"
// @Success      200  {object}  response.GarmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /garments/{id}/status [patch]
func (h *GarmentHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	g, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), request.GarmentStatus(payload.Status), payload.Note, payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGarment(g))
}

// BulkChangeStatus godoc
// @Summary      Change the status of several garments
// @Description  Each garment is updated on its own; the report tells changed, skipped, unknown and failed ids apart.
// @Tags         garments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BulkStatusRequest  true  "Selection and status"
// @Success      200  {object}  usecase.BulkTransitionReport
// @Router       /garments/status/bulk [post]
func (h *GarmentHandler) BulkChangeStatus(c *gin.Context) {
	var payload request.BulkStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	report, err := h.usecase.BulkTransition(c.Request.Context(), payload.GarmentIDs, request.GarmentStatus(payload.Status), payload.Note, payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MoveOnBoard godoc
// @Summary      Move a garment card to another board column
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Garment ID"
// @Param        payload  body      request.BoardMoveRequest  true  "Target column"
// @Success      200  {object}  response.GarmentResponse
// @Router       /board/garments/{id} [patch]
func (h *GarmentHandler) MoveOnBoard(c *gin.Context) {
	var payload request.BoardMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	g, err := h.usecase.MoveOnBoard(c.Request.Context(), c.Param("id"), request.GarmentStatus(payload.Status), payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGarment(g))
}

// AddNote godoc
// @Summary      Append a note to a garment
// @Tags         garments
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Garment ID"
// @Param        payload  body      request.NoteRequest  true  "Note"
// @Success      201  {object}  response.GarmentResponse
// @Router       /garments/{id}/notes [post]
func (h *GarmentHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	g, err := h.usecase.AppendNote(c.Request.Context(), c.Param("id"), payload.Text, payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromGarment(g))
}
