package handlers

import (
	"net/http"
	"strconv"

	request "lavanderia_rfid/internal/adapter/http/dto/request"
	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// IntakeHandler drives the intake wizard. Sessions are addressed by the
// :session_id path parameter, chosen by the client (one per operator tab).
type IntakeHandler struct {
	intake usecase.IIntakeUseCase
	reader usecase.IReaderUseCase
}

func NewIntakeHandler(intake usecase.IIntakeUseCase, reader usecase.IReaderUseCase) *IntakeHandler {
	return &IntakeHandler{intake: intake, reader: reader}
}

// GetState godoc
// @Summary      Current intake state
// @Tags         intake
// @Produce      json
// @Param        session_id  path      string  true   "Session ID"
// @Param        client_id   query     string  false  "Preselected client, applied to a session without one"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id} [get]
func (h *IntakeHandler) GetState(c *gin.Context) {
	sessionID := c.Param("session_id")
	s, err := h.intake.Open(c.Request.Context(), sessionID, c.Query("client_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeSnapshot(s.ID(), s.Snapshot()))
}

// SelectClient godoc
// @Summary      Select or change the intake client
// @Description  Changing the client during capture discards every captured garment.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true  "Session ID"
// @Param        payload     body      request.SelectClientRequest  true  "Client"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/client [post]
func (h *IntakeHandler) SelectClient(c *gin.Context) {
	var payload request.SelectClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	sessionID := c.Param("session_id")
	snap, err := h.intake.SelectClient(c.Request.Context(), sessionID, payload.ClientID)
	h.respond(c, sessionID, snap, err)
}

// Scan godoc
// @Summary      Capture tags into the intake
// @Description  Tags in the body are captured as is. Without tags the connected reader is used (mode single or batch, default batch).
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "Session ID"
// @Param        payload     body      request.IntakeScanRequest  true  "Tags or reader mode"
// @Success      200  {object}  response.CaptureResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /intake/{session_id}/scan [post]
func (h *IntakeHandler) Scan(c *gin.Context) {
	var payload request.IntakeScanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	ctx := c.Request.Context()
	sessionID := c.Param("session_id")

	tags := payload.Observations()
	partial := false
	if len(tags) == 0 {
		mode := usecase.ScanMode(payload.Mode)
		if mode == "" {
			mode = usecase.ScanModeBatch
		}
		res, err := h.reader.Scan(ctx, mode, nil)
		if err != nil && !res.Partial {
			writeError(c, err)
			return
		}
		if err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Int("tags", len(res.Tags)).Msg("[intake][handler] keeping tags flushed before disconnect")
		}
		tags = res.Tags
		partial = res.Partial
	}

	snap, added, err := h.intake.CaptureFromScan(ctx, sessionID, tags)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CaptureResponse{
		IntakeResponse: response.FromIntakeSnapshot(sessionID, snap),
		Added:          added,
		Partial:        partial,
	})
}

// FinalizeBatch godoc
// @Summary      Apply one attribute set to every unresolved garment
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                            true  "Session ID"
// @Param        payload     body      request.GarmentAttributesRequest  true  "Shared metadata"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/finalize [post]
func (h *IntakeHandler) FinalizeBatch(c *gin.Context) {
	var payload request.GarmentAttributesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	sessionID := c.Param("session_id")
	snap, err := h.intake.FinalizeBatchMetadata(c.Request.Context(), sessionID, payload.ToAttributes())
	h.respond(c, sessionID, snap, err)
}

// ResolveDraft godoc
// @Summary      Confirm or edit the metadata of one captured garment
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                            true  "Session ID"
// @Param        index       path      int                               true  "Draft position"
// @Param        payload     body      request.GarmentAttributesRequest  true  "Metadata"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/drafts/{index} [put]
func (h *IntakeHandler) ResolveDraft(c *gin.Context) {
	index, ok := draftIndex(c)
	if !ok {
		return
	}
	var payload request.GarmentAttributesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	sessionID := c.Param("session_id")
	snap, err := h.intake.ResolveDraft(c.Request.Context(), sessionID, index, payload.ToAttributes())
	h.respond(c, sessionID, snap, err)
}

// DiscardUnresolved godoc
// @Summary      Drop every garment whose metadata was not confirmed
// @Tags         intake
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/drafts/unresolved [delete]
func (h *IntakeHandler) DiscardUnresolved(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.intake.DiscardUnresolved(c.Request.Context(), sessionID)
	h.respond(c, sessionID, snap, err)
}

// RemoveDraft godoc
// @Summary      Remove one captured garment
// @Tags         intake
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Param        index       path      int     true  "Draft position"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/drafts/{index} [delete]
func (h *IntakeHandler) RemoveDraft(c *gin.Context) {
	index, ok := draftIndex(c)
	if !ok {
		return
	}
	sessionID := c.Param("session_id")
	snap, err := h.intake.RemoveGarment(c.Request.Context(), sessionID, index)
	h.respond(c, sessionID, snap, err)
}

// ClearDrafts godoc
// @Summary      Remove every captured garment
// @Tags         intake
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/drafts [delete]
func (h *IntakeHandler) ClearDrafts(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.intake.ClearAll(c.Request.Context(), sessionID)
	h.respond(c, sessionID, snap, err)
}

// Advance godoc
// @Summary      Go to the next step; on the confirmation step, commit the intake
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true   "Session ID"
// @Param        payload     body      request.OperatorRequest  false  "Operator"
// @Success      200  {object}  response.IntakeAdvanceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /intake/{session_id}/advance [post]
func (h *IntakeHandler) Advance(c *gin.Context) {
	var payload request.OperatorRequest
	_ = c.ShouldBindJSON(&payload)

	sessionID := c.Param("session_id")
	snap, receipt, err := h.intake.Advance(c.Request.Context(), sessionID, payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusOK
	if receipt != nil {
		status = http.StatusCreated
	}
	c.JSON(status, response.IntakeAdvanceResponse{
		IntakeResponse: response.FromIntakeSnapshot(sessionID, snap),
		Receipt:        response.FromReceipt(receipt),
	})
}

// Back godoc
// @Summary      Go back one step
// @Tags         intake
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200  {object}  response.IntakeResponse
// @Router       /intake/{session_id}/back [post]
func (h *IntakeHandler) Back(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.intake.Back(c.Request.Context(), sessionID)
	h.respond(c, sessionID, snap, err)
}

// Reset godoc
// @Summary      Discard the intake session
// @Tags         intake
// @Param        session_id  path      string  true  "Session ID"
// @Success      204
// @Router       /intake/{session_id} [delete]
func (h *IntakeHandler) Reset(c *gin.Context) {
	if err := h.intake.Reset(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IntakeHandler) respond(c *gin.Context, sessionID string, snap entities.IntakeSnapshot, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeSnapshot(sessionID, snap))
}

func draftIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeInvalidPayload(c)
		return 0, false
	}
	return index, true
}
