package handlers

import (
	"net/http"

	request "lavanderia_rfid/internal/adapter/http/dto/request"
	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ActionHandler is the single entry point for dashboard commands.
type ActionHandler struct {
	dispatcher usecase.IActionDispatcher
}

func NewActionHandler(d usecase.IActionDispatcher) *ActionHandler {
	return &ActionHandler{dispatcher: d}
}

// Dispatch godoc
// @Summary      Run an operator action
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ActionRequest  true  "Action"
// @Success      200  {object}  response.ActionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /actions [post]
func (h *ActionHandler) Dispatch(c *gin.Context) {
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	res, err := h.dispatcher.Dispatch(c.Request.Context(), payload.ToUseCase())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromActionResult(res))
}

// ListActions godoc
// @Summary      List the available operator actions
// @Tags         actions
// @Produce      json
// @Success      200  {array}  string
// @Router       /actions [get]
func (h *ActionHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, h.dispatcher.Actions())
}
