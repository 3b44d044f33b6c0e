package handlers

import (
	"context"
	"net/http"
	"time"

	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const streamWriteTimeout = 5 * time.Second

type ReaderHandler struct {
	usecase usecase.IReaderUseCase
}

func NewReaderHandler(uc usecase.IReaderUseCase) *ReaderHandler {
	return &ReaderHandler{usecase: uc}
}

// Connect godoc
// @Summary      Connect the RFID reader
// @Tags         reader
// @Produce      json
// @Success      200  {object}  response.ReaderStatusResponse
// @Router       /reader/connect [post]
func (h *ReaderHandler) Connect(c *gin.Context) {
	if err := h.usecase.Connect(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ReaderStatusResponse{Connected: h.usecase.IsConnected()})
}

// Disconnect godoc
// @Summary      Disconnect the RFID reader
// @Description  A batch scan in progress stops and keeps only the rounds already flushed.
// @Tags         reader
// @Produce      json
// @Success      200  {object}  response.ReaderStatusResponse
// @Router       /reader/disconnect [post]
func (h *ReaderHandler) Disconnect(c *gin.Context) {
	if err := h.usecase.Disconnect(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ReaderStatusResponse{Connected: h.usecase.IsConnected()})
}

// Status godoc
// @Summary      Reader connection status
// @Tags         reader
// @Produce      json
// @Success      200  {object}  response.ReaderStatusResponse
// @Router       /reader/status [get]
func (h *ReaderHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.ReaderStatusResponse{Connected: h.usecase.IsConnected()})
}

// Scan godoc
// @Summary      Run a scan and return the tags read
// @Tags         reader
// @Produce      json
// @Param        mode  query     string  false  "single or batch (default single)"
// @Success      200  {object}  response.ScanResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /reader/scan [post]
func (h *ReaderHandler) Scan(c *gin.Context) {
	mode := usecase.ScanMode(c.DefaultQuery("mode", string(usecase.ScanModeSingle)))
	res, err := h.usecase.Scan(c.Request.Context(), mode, nil)
	if err != nil && !res.Partial {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScanResult(res))
}

// Stream godoc
// @Summary      Live batch scan over a websocket
// @Description  Sends one "round" frame per flushed round and a final "done" or "error" frame. Closing the socket stops the scan.
// @Tags         reader
// @Router       /reader/stream [get]
func (h *ReaderHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("[reader][handler] websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The client only ever closes; any read error ends the scan.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	total := 0
	send := func(msg response.StreamMessage) {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Msg("[reader][handler] stream write failed")
			cancel()
		}
	}

	res, err := h.usecase.Scan(ctx, usecase.ScanModeBatch, func(round []entities.TagObservation) {
		total += len(round)
		send(response.StreamMessage{Type: "round", Tags: round, Total: total})
	})
	if err != nil && !res.Partial {
		send(response.StreamMessage{Type: "error", Error: mapError(err).Message, Total: total})
	} else {
		final := response.StreamMessage{Type: "done", Tags: res.Tags, Total: len(res.Tags), Partial: res.Partial}
		if err != nil {
			final.Error = mapError(err).Message
		}
		send(final)
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}
