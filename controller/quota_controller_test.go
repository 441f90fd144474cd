// controller/quota_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/headwall-io/gatehouse/controller"
	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/middleware"
	"github.com/headwall-io/gatehouse/model"
	mock_service "github.com/headwall-io/gatehouse/test/service_mock"
)

func TestQuotaController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	ctrl := gomock.NewController(t)

	mockQuotaService := mock_service.NewMockIQuotaService(ctrl)
	quotaController := controller.NewQuotaController(mockQuotaService)
	router := setupRouter()
	api := router.Group("/", middleware.Principal(true))
	quotaController.RegisterRoutes(api)

	t.Run("CheckQuota_Allowed", func(t *testing.T) {
		mockQuotaService.EXPECT().
			CheckQuota(gomock.Any(), "u1", "r1", model.FeatureContacts).
			Return(model.QuotaDecision{Allowed: true, Feature: model.FeatureContacts, Limit: 100, Current: 42}, nil)

		body := strings.NewReader(`{"resource_id":"r1","feature":"contacts"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quota/check", body)
		req.Header.Set("X-Principal-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CheckQuota_DeniedCarriesUsage", func(t *testing.T) {
		mockQuotaService.EXPECT().
			CheckQuota(gomock.Any(), "u1", "r1", model.FeatureContacts).
			Return(
				model.QuotaDecision{Allowed: false, Feature: model.FeatureContacts, Limit: 100, Current: 100},
				&gatehouse_errors.QuotaExceededError{Feature: "contacts", Limit: 100, Current: 100},
			)

		body := strings.NewReader(`{"resource_id":"r1","feature":"contacts"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quota/check", body)
		req.Header.Set("X-Principal-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		var decision model.QuotaDecision
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
		assert.Equal(t, 100, decision.Limit)
		assert.Equal(t, 100, decision.Current)
	})

	t.Run("CheckQuota_TransientFailure", func(t *testing.T) {
		mockQuotaService.EXPECT().
			CheckQuota(gomock.Any(), "u1", "r1", model.FeatureContacts).
			Return(model.QuotaDecision{}, gatehouse_errors.Transient("entity count", assert.AnError))

		body := strings.NewReader(`{"resource_id":"r1","feature":"contacts"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quota/check", body)
		req.Header.Set("X-Principal-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("CheckQuota_MissingPrincipal", func(t *testing.T) {
		body := strings.NewReader(`{"resource_id":"r1","feature":"contacts"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quota/check", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
