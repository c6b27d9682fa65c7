package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/external/mocks"
	"github.com/vitalio/triage-api/store"
)

func providerRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/providers", s.addProvider)
	router.PATCH("/providers/:providerID/availability", s.updateProviderAvailability)
	return router
}

const providerBody = `{
	"provider_id": "D011",
	"name": "Dr. Asha Nair",
	"specialty": "Dermatology",
	"latitude": 19.1136,
	"longitude": 72.8697,
	"rating": 4.5,
	"availability": true
}`

func TestAddProvider(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().AddProvider(gomock.Any(), gomock.Any()).Return(nil)

	router := providerRouter(&Server{mongoStore: m})
	req := httptest.NewRequest("POST", "/providers", strings.NewReader(providerBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAddProviderDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().AddProvider(gomock.Any(), gomock.Any()).Return(store.ErrProviderExists)

	router := providerRouter(&Server{mongoStore: m})
	req := httptest.NewRequest("POST", "/providers", strings.NewReader(providerBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var errResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &errResp))
	assert.Equal(t, int64(1201), errResp.Code, "wrong error code for duplicate provider")
}

func TestAddProviderInvalidRecord(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// missing specialty and out-of-range latitude
	body := `{"provider_id": "D011", "name": "Dr. Asha Nair", "latitude": 120}`

	router := providerRouter(&Server{mongoStore: mocks.NewMockMongoStore(ctl)})
	req := httptest.NewRequest("POST", "/providers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var errResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &errResp))
	assert.Equal(t, int64(1010), errResp.Code)
}

func TestUpdateProviderAvailability(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().UpdateProviderAvailability(gomock.Any(), "D001", false).Return(nil)

	router := providerRouter(&Server{mongoStore: m})
	req := httptest.NewRequest("PATCH", "/providers/D001/availability",
		strings.NewReader(`{"availability": false}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateProviderAvailabilityUnknown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().UpdateProviderAvailability(gomock.Any(), "D999", true).
		Return(store.ErrProviderNotFound)

	router := providerRouter(&Server{mongoStore: m})
	req := httptest.NewRequest("PATCH", "/providers/D999/availability",
		strings.NewReader(`{"availability": true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var errResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &errResp))
	assert.Equal(t, int64(1202), errResp.Code, "wrong error code for unknown provider")
}
