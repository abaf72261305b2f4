package httpv1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	httpv1 "github.com/logtide/logtide/internal/controller/http/v1"
	"github.com/logtide/logtide/internal/controller/validators"
	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/metrics"
	servicemocks "github.com/logtide/logtide/internal/mocks/service"
	"github.com/logtide/logtide/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogController_CreateLog(t *testing.T) {
	utc := time.UTC
	alertMsg := "ALERT: 5 occurrences of ERROR in service auth"

	type mockBehavior func(is *servicemocks.MockIngest)

	testCases := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		wantStatus   int
		wantContains []string
	}{
		{
			name: "accepted without alert",
			body: `{"service":"auth","level":"ERROR","message":"boom","timestamp":"2025-03-10T12:30:45Z"}`,
			mockBehavior: func(is *servicemocks.MockIngest) {
				is.EXPECT().
					Ingest(gomock.Any(), gomock.Any()).
					Return(domain.IngestResult{Accepted: true, Count: 1}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{`"count":1`, `"alert":null`},
		},
		{
			name: "accepted with alert",
			body: `{"service":"auth","level":"ERROR","message":"boom","timestamp":"2025-03-10T12:30:45Z"}`,
			mockBehavior: func(is *servicemocks.MockIngest) {
				is.EXPECT().
					Ingest(gomock.Any(), gomock.Any()).
					Return(domain.IngestResult{Accepted: true, Count: 5, Alert: &alertMsg}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{`"count":5`, "5 occurrences of ERROR in service auth"},
		},
		{
			name:         "unparseable timestamp rejected",
			body:         `{"service":"auth","level":"ERROR","message":"boom","timestamp":"noon-ish"}`,
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"timestamp"},
		},
		{
			name:         "empty service rejected",
			body:         `{"service":"","level":"ERROR","message":"boom","timestamp":"2025-03-10T12:30:45Z"}`,
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"service"},
		},
		{
			name: "storage unavailable maps to 503",
			body: `{"service":"auth","level":"ERROR","message":"boom","timestamp":"2025-03-10T12:30:45Z"}`,
			mockBehavior: func(is *servicemocks.MockIngest) {
				is.EXPECT().
					Ingest(gomock.Any(), gomock.Any()).
					Return(domain.IngestResult{}, service.ErrStorageUnavailable)
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantContains: []string{"retry"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIngest := servicemocks.NewMockIngest(ctrl)
			mockQuery := servicemocks.NewMockQuery(ctrl)
			if tc.mockBehavior != nil {
				tc.mockBehavior(mockIngest)
			}

			cnt := metrics.NewTestCounters()
			controller := httpv1.NewLogController(mockIngest, mockQuery, cnt, utc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			err := controller.CreateLog(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			for _, want := range tc.wantContains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestLogController_GetLogsByService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	utc := time.UTC
	bucketStart := time.Date(2025, 3, 10, 12, 30, 0, 0, utc)

	mockIngest := servicemocks.NewMockIngest(ctrl)
	mockQuery := servicemocks.NewMockQuery(ctrl)
	mockQuery.EXPECT().
		ListByService(gomock.Any(), "auth", 0).
		Return([]domain.MetricBucket{
			{Service: "auth", Level: "ERROR", Count: 6, BucketStart: bucketStart},
		}, nil)

	cnt := metrics.NewTestCounters()
	controller := httpv1.NewLogController(mockIngest, mockQuery, cnt, utc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logs/service/auth", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("service")
	ctx.SetParamValues("auth")

	err := controller.GetLogsByService(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":6`)
	assert.Contains(t, rec.Body.String(), "2025-03-10T12:30:00Z")
}

func TestLogController_GetLogsByService_Limit(t *testing.T) {
	utc := time.UTC

	testCases := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{
			name:       "limit passed to the query service",
			query:      "limit=25",
			wantLimit:  25,
			wantStatus: http.StatusOK,
		},
		{
			name:       "limit above the cap is capped",
			query:      "limit=999999",
			wantLimit:  validators.MaxQueryLimit,
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-numeric limit rejected",
			query:      "limit=lots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit rejected",
			query:      "limit=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIngest := servicemocks.NewMockIngest(ctrl)
			mockQuery := servicemocks.NewMockQuery(ctrl)
			if tc.wantStatus == http.StatusOK {
				mockQuery.EXPECT().
					ListByService(gomock.Any(), "auth", tc.wantLimit).
					Return([]domain.MetricBucket{}, nil)
			}

			cnt := metrics.NewTestCounters()
			controller := httpv1.NewLogController(mockIngest, mockQuery, cnt, utc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/logs/service/auth?"+tc.query, nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.SetParamNames("service")
			ctx.SetParamValues("auth")

			err := controller.GetLogsByService(ctx)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), "limit")
			}
		})
	}
}
