package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHousekeepingMiddleware_TriggersEveryRequestAtRateOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var wg sync.WaitGroup
	wg.Add(1)

	mockHousekeeper := NewMockHousekeeper(ctrl)
	mockHousekeeper.EXPECT().
		RepairCounts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			wg.Done()
			return nil
		})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// sampleRate 1 means every request triggers housekeeping
	handler := HousekeepingMiddleware(mockHousekeeper, 1)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("housekeeping did not run")
	}
}

func TestHousekeepingMiddleware_DisabledByNonPositiveRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHousekeeper := NewMockHousekeeper(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := HousekeepingMiddleware(mockHousekeeper, 0)(next)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
