package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/adapter/http/handlers/mocks"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/domain/errs"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"
)

func readerRouter(h *ReaderHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/reader")
	g.POST("/connect", h.Connect)
	g.POST("/disconnect", h.Disconnect)
	g.GET("/status", h.Status)
	g.POST("/scan", h.Scan)
	g.GET("/stream", h.Stream)
	return r
}

func TestReaderHandler_Connection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReaderUseCase(ctrl)
	r := readerRouter(NewReaderHandler(uc))

	gomock.InOrder(
		uc.EXPECT().Connect().Return(nil),
		uc.EXPECT().IsConnected().Return(true),
		uc.EXPECT().IsConnected().Return(true),
		uc.EXPECT().Disconnect().Return(nil),
		uc.EXPECT().IsConnected().Return(false),
	)

	var status response.ReaderStatusResponse
	w := perform(r, http.MethodPost, "/v1/reader/connect", "")
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &status)
	if !status.Connected {
		t.Fatalf("expected connected after connect")
	}

	w = perform(r, http.MethodGet, "/v1/reader/status", "")
	expectStatus(t, w, http.StatusOK)

	w = perform(r, http.MethodPost, "/v1/reader/disconnect", "")
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &status)
	if status.Connected {
		t.Fatalf("expected disconnected")
	}
}

func TestReaderHandler_Scan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("single by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReaderUseCase(ctrl)
		r := readerRouter(NewReaderHandler(uc))

		uc.EXPECT().Scan(gomock.Any(), usecase.ScanModeSingle, gomock.Any()).
			Return(usecase.ScanResult{Mode: usecase.ScanModeSingle, Tags: []entities.TagObservation{{TagID: "E2001"}}}, nil)

		w := perform(r, http.MethodPost, "/v1/reader/scan", "")
		expectStatus(t, w, http.StatusOK)
		var body response.ScanResponse
		decode(t, w, &body)
		if body.Mode != "single" || body.Count != 1 || body.Tags[0].TagID != "E2001" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReaderUseCase(ctrl)
		r := readerRouter(NewReaderHandler(uc))

		uc.EXPECT().Scan(gomock.Any(), usecase.ScanModeBatch, gomock.Any()).Return(usecase.ScanResult{}, errs.ErrNotConnected)

		expectStatus(t, perform(r, http.MethodPost, "/v1/reader/scan?mode=batch", ""), http.StatusServiceUnavailable)
	})

	t.Run("partial batch is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReaderUseCase(ctrl)
		r := readerRouter(NewReaderHandler(uc))

		uc.EXPECT().Scan(gomock.Any(), usecase.ScanModeBatch, gomock.Any()).
			Return(usecase.ScanResult{Mode: usecase.ScanModeBatch, Tags: []entities.TagObservation{{TagID: "A"}, {TagID: "B"}}, Partial: true}, errs.ErrNotConnected)

		w := perform(r, http.MethodPost, "/v1/reader/scan?mode=batch", "")
		expectStatus(t, w, http.StatusOK)
		var body response.ScanResponse
		decode(t, w, &body)
		if !body.Partial || body.Count != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestReaderHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReaderUseCase(ctrl)

	rounds := [][]entities.TagObservation{
		{{TagID: "A"}, {TagID: "B"}},
		{{TagID: "C"}},
	}
	uc.EXPECT().Scan(gomock.Any(), usecase.ScanModeBatch, gomock.Any()).
		DoAndReturn(func(_ context.Context, mode usecase.ScanMode, onRound func([]entities.TagObservation)) (usecase.ScanResult, error) {
			var all []entities.TagObservation
			for _, round := range rounds {
				onRound(round)
				all = append(all, round...)
			}
			return usecase.ScanResult{Mode: mode, Tags: all}, nil
		})

	srv := httptest.NewServer(readerRouter(NewReaderHandler(uc)))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/reader/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var got []response.StreamMessage
	for {
		var msg response.StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		got = append(got, msg)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 frames, got %d: %+v", len(got), got)
	}
	if got[0].Type != "round" || got[0].Total != 2 || got[1].Total != 3 {
		t.Fatalf("unexpected round frames: %+v", got[:2])
	}
	if got[2].Type != "done" || got[2].Total != 3 || got[2].Partial {
		t.Fatalf("unexpected final frame: %+v", got[2])
	}
}
