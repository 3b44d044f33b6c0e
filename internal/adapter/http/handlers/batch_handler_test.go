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

func batchRouter(h *BatchHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/batches", h.CreateBatch)
	r.GET("/v1/batches", h.ListBatches)
	r.GET("/v1/batches/:id", h.GetBatch)
	r.POST("/v1/batches/:id/garments", h.AddGarment)
	r.PATCH("/v1/batches/:id/status", h.SetStatus)
	r.POST("/v1/batches/:id/complete", h.CompleteBatch)
	r.DELETE("/v1/batches/:id", h.DeleteBatch)
	return r
}

func TestBatchHandler_CreateBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := batchRouter(NewBatchHandler(mocks.NewMockIBatchUseCase(ctrl)))

		w := perform(r, http.MethodPost, "/v1/batches", `{"garment_ids":["1"]}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("expected defaults to listed garments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().
			CreateBatch(gomock.Any(), "c1", []string{"1", "2"}, 2, "ana").
			Return(entities.Batch{ID: "b1", BatchNumber: 1, ClientID: "c1", GarmentIDs: []string{"1", "2"}, ExpectedGarments: 2}, nil)

		w := perform(r, http.MethodPost, "/v1/batches", `{"client_id":"c1","garment_ids":["1","2"],"operator":"ana"}`)
		expectStatus(t, w, http.StatusCreated)
		var body response.BatchResponse
		decode(t, w, &body)
		if body.Progress != 100 || !body.IsComplete {
			t.Fatalf("unexpected batch: %+v", body)
		}
	})

	t.Run("garment of another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().CreateBatch(gomock.Any(), "c1", []string{"9"}, 3, "").Return(entities.Batch{}, usecase.ErrGarmentOtherClient)

		w := perform(r, http.MethodPost, "/v1/batches", `{"client_id":"c1","garment_ids":["9"],"expected_garments":3}`)
		expectStatus(t, w, http.StatusConflict)
	})
}

func TestBatchHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list and get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().ListBatches(gomock.Any(), "").Return([]entities.Batch{{ID: "b1", ExpectedGarments: 1}}, nil)
		uc.EXPECT().GetBatch(gomock.Any(), "b2").Return(entities.Batch{}, usecase.ErrBatchNotFound)

		expectStatus(t, perform(r, http.MethodGet, "/v1/batches", ""), http.StatusOK)
		expectStatus(t, perform(r, http.MethodGet, "/v1/batches/b2", ""), http.StatusNotFound)
	})

	t.Run("add garment to delivered batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().AddGarment(gomock.Any(), "b1", "3", "").Return(entities.Batch{}, usecase.ErrBatchDelivered)

		w := perform(r, http.MethodPost, "/v1/batches/b1/garments", `{"garment_id":"3"}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("status override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().SetStatus(gomock.Any(), "b1", entities.BatchStatusEnProceso, "").Return(entities.Batch{ID: "b1", Status: entities.BatchStatusEnProceso}, nil)

		w := perform(r, http.MethodPatch, "/v1/batches/b1/status", `{"status":"en_proceso"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("complete without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().CompleteBatch(gomock.Any(), "b1", "").Return(entities.Batch{}, usecase.ErrBatchIncomplete)

		w := perform(r, http.MethodPost, "/v1/batches/b1/complete", "")
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchUseCase(ctrl)
		r := batchRouter(NewBatchHandler(uc))

		uc.EXPECT().DeleteBatch(gomock.Any(), "b1", "ana").Return(nil)

		w := perform(r, http.MethodDelete, "/v1/batches/b1?operator=ana", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}
