package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"creditrisk/internal/decision"
	"creditrisk/internal/model"
	"creditrisk/pkg/testutil"
)

// HandlerSuite provides shared test setup for decision handler tests.
// Uses real components (artifacts from testdata through the file loader), not mocks.
// Handler tests validate HTTP concerns (parsing, response mapping).
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// testdata/credit_risk_model.json: amount <= 5000 -> 0.25 else 0.75,
// averaged with age <= 25 -> 0.5 else 0.0
func (s *HandlerSuite) loader(dir string) *model.Loader {
	l, err := model.NewLoader(model.NewFileSource(dir), "credit_risk_model.json", "sex_encoder.json")
	s.Require().NoError(err)
	return l
}

func (s *HandlerSuite) newRouter(artifacts decision.ArtifactProvider) http.Handler {
	svc, err := decision.New(artifacts)
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func (s *HandlerSuite) SetupTest() {
	s.router = s.newRouter(s.loader("testdata"))
}

func (s *HandlerSuite) post(body any) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/decision/analyze", body))
}

func analyzeBody() map[string]any {
	return map[string]any{
		"age":              30,
		"sex":              "male",
		"job_level":        2,
		"requested_amount": 2000,
		"duration_months":  24,
	}
}

// =============================================================================
// HandleAnalyze Tests
// =============================================================================

func (s *HandlerSuite) TestAnalyze_InvalidJSON() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/decision/analyze", "not valid json")

	rec := testutil.DoRequest(s.router, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code, "expected 400 for invalid JSON")
}

func (s *HandlerSuite) TestAnalyze_Approved() {
	rec := s.post(analyzeBody())

	require.Equal(s.T(), http.StatusOK, rec.Code)

	resp := testutil.UnmarshalResponse[AnalyzeResponse](s.T(), rec)
	assert.Equal(s.T(), "approved", resp.Verdict)
	assert.Equal(s.T(), 0.125, resp.DefaultProbability)
	assert.Equal(s.T(), 781, resp.CreditScore) // round(850 - 0.125*550)
	assert.Equal(s.T(), 50_000.0, resp.Ceiling)
	assert.False(s.T(), resp.AgeOverrideApplied)
}

func (s *HandlerSuite) TestAnalyze_Declined() {
	body := analyzeBody()
	body["age"] = 22
	body["job_level"] = 3
	body["requested_amount"] = 8000
	body["sex"] = " Female "

	rec := s.post(body)

	require.Equal(s.T(), http.StatusOK, rec.Code)

	resp := testutil.UnmarshalResponse[AnalyzeResponse](s.T(), rec)
	assert.Equal(s.T(), "declined", resp.Verdict)
	assert.Equal(s.T(), 506, resp.CreditScore) // round(850 - 0.625*550)
	assert.Equal(s.T(), 100_000.0, resp.Ceiling)
}

func (s *HandlerSuite) TestAnalyze_PolicyViolation() {
	body := analyzeBody()
	body["job_level"] = 0
	body["requested_amount"] = 150_000

	rec := s.post(body)

	require.Equal(s.T(), http.StatusUnprocessableEntity, rec.Code)

	resp := testutil.UnmarshalResponse[PolicyViolationResponse](s.T(), rec)
	assert.Equal(s.T(), "policy_violation", resp.Error)
	assert.Equal(s.T(), "auto_declined", resp.Verdict)
	assert.Equal(s.T(), 10_000.0, resp.Ceiling)
	assert.Equal(s.T(), 150_000.0, resp.RequestedAmount)
	assert.NotEmpty(s.T(), resp.ErrorDescription)
}

func (s *HandlerSuite) TestAnalyze_UnknownCategory() {
	body := analyzeBody()
	body["sex"] = "unspecified"

	rec := s.post(body)

	testutil.AssertStatusAndError(s.T(), rec, http.StatusBadRequest, "unknown_category")
}

func (s *HandlerSuite) TestAnalyze_ModelUnavailable() {
	router := s.newRouter(s.loader(s.T().TempDir()))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/decision/analyze", analyzeBody())

	rec := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(s.T(), rec, http.StatusServiceUnavailable, "model_unavailable")
}

func (s *HandlerSuite) TestAnalyze_Validation() {
	cases := map[string]func(map[string]any){
		"age below 18":     func(b map[string]any) { b["age"] = 17 },
		"job level 4":      func(b map[string]any) { b["job_level"] = 4 },
		"negative amount":  func(b map[string]any) { b["requested_amount"] = -10 },
		"duration over 72": func(b map[string]any) { b["duration_months"] = 96 },
		"missing sex":      func(b map[string]any) { delete(b, "sex") },
		"unknown field":    func(b map[string]any) { b["income"] = 1 },
	}

	for name, mutate := range cases {
		s.Run(name, func() {
			body := analyzeBody()
			mutate(body)
			rec := s.post(body)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

// =============================================================================
// HandlePreviewLimit Tests
// =============================================================================

func (s *HandlerSuite) getLimit(query string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/decision/limit?"+query, nil))
}

func (s *HandlerSuite) TestPreviewLimit() {
	s.Run("age override applied", func() {
		rec := s.getLimit("job_level=3&age=20")
		s.Require().Equal(http.StatusOK, rec.Code)

		resp := testutil.UnmarshalResponse[LimitResponse](s.T(), rec)
		s.Equal(50_000.0, resp.Ceiling)
		s.True(resp.AgeOverrideApplied)
	})

	s.Run("no override at 21", func() {
		rec := s.getLimit("job_level=3&age=21")
		s.Require().Equal(http.StatusOK, rec.Code)

		resp := testutil.UnmarshalResponse[LimitResponse](s.T(), rec)
		s.Equal(100_000.0, resp.Ceiling)
		s.False(resp.AgeOverrideApplied)
	})

	s.Run("works without a model", func() {
		router := s.newRouter(nil)
		rec := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/decision/limit?job_level=1&age=30", nil))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid parameters", func() {
		for _, q := range []string{"", "job_level=x&age=30", "job_level=5&age=30", "job_level=1&age=10"} {
			rec := s.getLimit(q)
			s.Equal(http.StatusBadRequest, rec.Code, q)
		}
	})
}
