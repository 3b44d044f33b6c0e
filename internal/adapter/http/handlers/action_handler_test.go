package handlers

import (
	"net/http"
	"testing"

	response "lavanderia_rfid/internal/adapter/http/dto/response"
	"lavanderia_rfid/internal/adapter/http/handlers/mocks"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestActionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ActionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/actions", h.Dispatch)
		r.GET("/v1/actions", h.ListActions)
		return r
	}

	t.Run("missing action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(NewActionHandler(mocks.NewMockIActionDispatcher(ctrl)))

		expectStatus(t, perform(r, http.MethodPost, "/v1/actions", `{"garment_ids":["1"]}`), http.StatusBadRequest)
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIActionDispatcher(ctrl)
		r := newRouter(NewActionHandler(d))

		d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(usecase.ActionResult{}, usecase.ErrUnknownAction)

		expectStatus(t, perform(r, http.MethodPost, "/v1/actions", `{"action":"teleport"}`), http.StatusBadRequest)
	})

	t.Run("dispatches converted request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIActionDispatcher(ctrl)
		r := newRouter(NewActionHandler(d))

		want := usecase.ActionRequest{
			Action:     usecase.ActionMarkReady,
			GarmentIDs: []string{"1"},
			Operator:   "ana",
		}
		d.EXPECT().Dispatch(gomock.Any(), want).Return(usecase.ActionResult{
			Action:   usecase.ActionMarkReady,
			Garments: []entities.Garment{{ID: "1", Status: entities.GarmentStatusReady}},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/actions", `{"action":"mark_ready","garment_ids":["1"],"operator":"ana"}`)
		expectStatus(t, w, http.StatusOK)
		var body response.ActionResponse
		decode(t, w, &body)
		if body.Action != "mark_ready" || len(body.Garments) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIActionDispatcher(ctrl)
		r := newRouter(NewActionHandler(d))

		d.EXPECT().Actions().Return([]usecase.OperatorAction{usecase.ActionMarkReady})

		w := perform(r, http.MethodGet, "/v1/actions", "")
		expectStatus(t, w, http.StatusOK)
		var body []string
		decode(t, w, &body)
		if len(body) != 1 || body[0] != "mark_ready" {
			t.Fatalf("unexpected actions: %v", body)
		}
	})
}
