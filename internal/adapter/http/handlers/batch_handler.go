package handlers

import (
	"net/http"

	request "lavanderia_rfid/internal/adapter/http/dto/request"
	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	usecase usecase.IBatchUseCase
}

func NewBatchHandler(uc usecase.IBatchUseCase) *BatchHandler {
	return &BatchHandler{usecase: uc}
}

// CreateBatch godoc
// @Summary      Create a batch
// @Description  expected_garments defaults to the number of listed garments and is raised to it when smaller.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateBatchRequest  true  "Batch"
// @Success      201  {object}  response.BatchResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches [post]
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var payload request.CreateBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	b, err := h.usecase.CreateBatch(c.Request.Context(), payload.ClientID, payload.GarmentIDs, payload.Expected(), payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBatch(b))
}

// GetBatch godoc
// @Summary      Get a batch with its progress
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.BatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /batches/{id} [get]
func (h *BatchHandler) GetBatch(c *gin.Context) {
	b, err := h.usecase.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}

// ListBatches godoc
// @Summary      List batches
// @Tags         batches
// @Produce      json
// @Param        client_id  query     string  false  "Client filter"
// @Success      200  {array}   response.BatchResponse
// @Router       /batches [get]
func (h *BatchHandler) ListBatches(c *gin.Context) {
	list, err := h.usecase.ListBatches(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatches(list))
}

// AddGarment godoc
// @Summary      Add a garment to a batch
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Batch ID"
// @Param        payload  body      request.AddGarmentRequest  true  "Garment"
// @Success      200  {object}  response.BatchResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches/{id}/garments [post]
func (h *BatchHandler) AddGarment(c *gin.Context) {
	var payload request.AddGarmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	b, err := h.usecase.AddGarment(c.Request.Context(), c.Param("id"), payload.GarmentID, payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}

// SetStatus godoc
// @Summary      Override the status of a batch
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Batch ID"
// @Param        payload  body      request.BatchStatusRequest  true  "Status"
// @Success      200  {object}  response.BatchResponse
// @Router       /batches/{id}/status [patch]
func (h *BatchHandler) SetStatus(c *gin.Context) {
	var payload request.BatchStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	b, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), request.BatchStatus(payload.Status), payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}

// CompleteBatch godoc
// @Summary      Mark a full batch as ready and notify the client
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.BatchResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches/{id}/complete [post]
func (h *BatchHandler) CompleteBatch(c *gin.Context) {
	var payload request.OperatorRequest
	_ = c.ShouldBindJSON(&payload)

	b, err := h.usecase.CompleteBatch(c.Request.Context(), c.Param("id"), payload.Operator)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}

// DeleteBatch godoc
// @Summary      Delete a batch whose garments were all delivered
// @Tags         batches
// @Param        id   path      string  true  "Batch ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches/{id} [delete]
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	if err := h.usecase.DeleteBatch(c.Request.Context(), c.Param("id"), c.Query("operator")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
