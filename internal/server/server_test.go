package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/config"
	hrsummarydomain "github.com/wellbeamhq/pulse/internal/hrsummary/domain"
	"github.com/wellbeamhq/pulse/internal/risk"
	"github.com/wellbeamhq/pulse/internal/sentiment"
	twindomain "github.com/wellbeamhq/pulse/internal/twin/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCheckinService struct {
	lastReq checkindomain.RecordCheckInRequest
	resp    checkindomain.RecordCheckInResponse
	err     error
}

func (f *fakeCheckinService) Record(_ context.Context, req checkindomain.RecordCheckInRequest) (checkindomain.RecordCheckInResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return checkindomain.RecordCheckInResponse{}, f.err
	}
	return f.resp, nil
}

type fakeTwinService struct {
	resp twindomain.StateResponse
	err  error
}

func (f *fakeTwinService) State(context.Context, twindomain.StateRequest) (twindomain.StateResponse, error) {
	if f.err != nil {
		return twindomain.StateResponse{}, f.err
	}
	return f.resp, nil
}

type fakeHRSummaryService struct {
	resp hrsummarydomain.OrgSummaryResponse
	err  error
}

func (f *fakeHRSummaryService) Summary(context.Context) (hrsummarydomain.OrgSummaryResponse, error) {
	if f.err != nil {
		return hrsummarydomain.OrgSummaryResponse{}, f.err
	}
	return f.resp, nil
}

type fakes struct {
	checkin   *fakeCheckinService
	twin      *fakeTwinService
	hrSummary *fakeHRSummaryService
}

func newTestServer(t *testing.T) (*gin.Engine, *fakes) {
	t.Helper()

	f := &fakes{
		checkin:   &fakeCheckinService{},
		twin:      &fakeTwinService{},
		hrSummary: &fakeHRSummaryService{},
	}

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	NewServer(ServerParams{
		Gin:          engine,
		Cfg:          config.Config{},
		CheckinSvc:   f.checkin,
		TwinSvc:      f.twin,
		HRSummarySvc: f.hrSummary,
		Classifier:   sentiment.NewKeywordClassifier(config.NewStaticWellbeingConfigHolder(config.DefaultWellbeingConfig())),
	})

	return engine, f
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitCheckIn(t *testing.T) {
	engine, f := newTestServer(t)
	f.checkin.resp = checkindomain.RecordCheckInResponse{
		RiskLevel:      risk.LevelHigh,
		Recommendation: "Consider speaking with someone from HR or taking a mental health day.",
	}

	w := doJSON(t, engine, http.MethodPost, "/api/checkins", gin.H{
		"employeeId": "e1",
		"moodScore":  1,
		"notes":      "I am exhausted",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "HIGH", body["riskLevel"])
	assert.NotEmpty(t, body["recommendation"])

	assert.Equal(t, "e1", f.checkin.lastReq.EmployeeID)
	assert.Equal(t, 1, f.checkin.lastReq.MoodScore)
	assert.Equal(t, "I am exhausted", f.checkin.lastReq.NoteText)
	assert.Nil(t, f.checkin.lastReq.Sentiment)
}

func TestSubmitCheckInMalformedBody(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/checkins", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitCheckInValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"invalid employee", checkindomain.ErrInvalidEmployee},
		{"invalid mood score", checkindomain.ErrInvalidMoodScore},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, f := newTestServer(t)
			f.checkin.err = tc.err

			w := doJSON(t, engine, http.MethodPost, "/api/checkins", gin.H{
				"employeeId": "e1",
				"moodScore":  3,
			})

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			errObj, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "validation_error", errObj["type"])
		})
	}
}

func TestSubmitCheckInStoreFailure(t *testing.T) {
	engine, f := newTestServer(t)
	f.checkin.err = checkindomain.ErrStoreWrite

	w := doJSON(t, engine, http.MethodPost, "/api/checkins", gin.H{
		"employeeId": "e1",
		"moodScore":  3,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitCheckInMissingMoodScoreDefaultsToZero(t *testing.T) {
	engine, f := newTestServer(t)

	doJSON(t, engine, http.MethodPost, "/api/checkins", gin.H{"employeeId": "e1"})

	// The handler passes zero through; the service rejects it.
	assert.Equal(t, 0, f.checkin.lastReq.MoodScore)
}

func TestSubmitCheckInWithPrecomputedSentiment(t *testing.T) {
	engine, f := newTestServer(t)
	f.checkin.resp = checkindomain.RecordCheckInResponse{RiskLevel: risk.LevelHigh}

	w := doJSON(t, engine, http.MethodPost, "/api/checkins", gin.H{
		"employeeId": "e1",
		"moodScore":  5,
		"notes":      "fine",
		"sentimentResult": gin.H{
			"sentiment": "negative",
			"score":     0.1,
			"emotion":   "stress",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.checkin.lastReq.Sentiment)
	assert.Equal(t, sentiment.LabelNegative, f.checkin.lastReq.Sentiment.Sentiment)
	assert.Equal(t, 0.1, f.checkin.lastReq.Sentiment.Score)
}

func TestClassifySentiment(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/sentiment/classify", gin.H{
		"text": "feeling great today",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "POSITIVE", body["sentiment"])
	assert.Equal(t, 0.9, body["score"])
	assert.Equal(t, "joy", body["emotion"])
}

func TestClassifySentimentEmptyText(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/sentiment/classify", gin.H{"text": ""})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "NEUTRAL", body["sentiment"])
}

func TestGetDigitalTwinState(t *testing.T) {
	engine, f := newTestServer(t)
	f.twin.resp = twindomain.StateResponse{
		CurrentState: twindomain.StatePositive,
		Summary:      "Based on your last 5 check-ins, your average mood is 4.2 out of 5.",
		Metrics:      twindomain.Metrics{Physical: 84, Emotional: 84, Productivity: 76},
	}

	w := doJSON(t, engine, http.MethodGet, "/api/employees/e1/twin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Positive", body["currentState"])

	metrics, ok := body["metrics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 84, metrics["physical"])
	assert.EqualValues(t, 76, metrics["productivity"])
}

func TestGetDigitalTwinStateInvalidEmployee(t *testing.T) {
	engine, f := newTestServer(t)
	f.twin.err = twindomain.ErrInvalidEmployee

	w := doJSON(t, engine, http.MethodGet, "/api/employees/e1/twin", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDigitalTwinStateStoreFailure(t *testing.T) {
	engine, f := newTestServer(t)
	f.twin.err = errors.New("connection refused")

	w := doJSON(t, engine, http.MethodGet, "/api/employees/e1/twin", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetOrgSummary(t *testing.T) {
	engine, f := newTestServer(t)
	f.hrSummary.resp = hrsummarydomain.OrgSummaryResponse{
		EmployeesAtHighRiskToday: 2,
		TotalCheckinsToday:       7,
		PerDepartment: map[string]hrsummarydomain.RiskBreakdown{
			"Engineering": {High: 2, Medium: 1, Low: 3},
			"Unknown":     {Low: 1},
		},
	}

	w := doJSON(t, engine, http.MethodGet, "/api/hr/summary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["employeesAtHighRiskToday"])
	assert.EqualValues(t, 7, body["totalCheckinsToday"])

	perDept, ok := body["perDepartment"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, perDept, "Engineering")
	assert.Contains(t, perDept, "Unknown")
}

func TestGetOrgSummaryStoreFailure(t *testing.T) {
	engine, f := newTestServer(t)
	f.hrSummary.err = checkindomain.ErrStoreRead

	w := doJSON(t, engine, http.MethodGet, "/api/hr/summary", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthRouteNotRegisteredHere(t *testing.T) {
	engine, _ := newTestServer(t)

	// Routes outside /api live on the engine built by NewEngine.
	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
