package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wheeltrack/internal/analytics"
	"wheeltrack/internal/catalog"
	"wheeltrack/internal/plan"
	"wheeltrack/internal/progress"
	"wheeltrack/internal/store"
	"wheeltrack/internal/tracker"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	cat := catalog.Builtin()
	svc := progress.New(s.UserRepo(), s.AttemptRepo(), cat, s)
	engine := analytics.New(s.AttemptRepo())
	rec := plan.NewPhaseRecommender(cat)
	return New(Deps{
		Log:         zap.NewNop(),
		Catalog:     cat,
		Tracker:     tracker.New(s.UserRepo(), s.AttemptRepo(), cat),
		Progress:    svc,
		Engine:      engine,
		Plans:       plan.NewGenerator(svc, engine, rec),
		Recommender: rec,
	})
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", decode(t, w)["status"])
}

func TestCreateUserAndProgress(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/user/user_001/create", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "user_001", body["user_id"])
	require.Equal(t, "Foundation", body["current_phase"])

	w = do(t, srv, http.MethodGet, "/user/user_001/progress", "")
	require.Equal(t, http.StatusOK, w.Code)
	prog := decode(t, w)
	require.Equal(t, float64(0), prog["total_attempts"])
	require.Empty(t, prog["skill_progress"])
}

func TestProgressUnknownUser(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/user/ghost/progress", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "not_found", decode(t, w)["kind"])
}

func TestAttemptFlow(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodPost, "/user/user_001/skill/a02_2m_backward/start-attempt", "")
	require.Equal(t, http.StatusOK, w.Code)
	attemptID := decode(t, w)["attempt_id"].(string)
	require.NotEmpty(t, attemptID)

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-input",
		`{"step_number": 1, "expected_input": "S", "actual_input": "S"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["correct"])

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-error",
		`{"step_number": 1, "error_type": "wrong_direction", "expected_action": "move_backward", "actual_action": "move_forward"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "medium", decode(t, w)["severity"])

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-telemetry",
		`{"step_number": 1, "expected_action": "move_backward", "actual_action": "move_forward", "success": false, "hold_duration_ms": 300}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/complete", `{"success": false}`)
	require.Equal(t, http.StatusOK, w.Code)
	done := decode(t, w)
	require.Equal(t, "completed", done["status"])
	require.Equal(t, false, done["success"])
	require.True(t, strings.HasSuffix(done["end_time"].(string), "Z"))

	// The attempt is sealed now.
	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/complete", `{"success": true}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "invalid_state", decode(t, w)["kind"])

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-input",
		`{"step_number": 2, "expected_input": "S", "actual_input": "W"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestStartAttemptUnknownUser(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodPost, "/user/ghost/skill/a01_10m_forward/start-attempt", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordErrorUnknownType(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)
	w := do(t, srv, http.MethodPost, "/user/user_001/skill/a01_10m_forward/start-attempt", "")
	attemptID := decode(t, w)["attempt_id"].(string)

	w = do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-error",
		`{"step_number": 1, "error_type": "wheel_fell_off"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "validation", decode(t, w)["kind"])
}

func TestRecordInputMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodPost, "/attempt/att_x/record-input", `{"step_number": "one"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGlobalErrorsEmpty(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/analytics/global-errors", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, float64(0), body["total_attempts"])
	require.Equal(t, float64(0), body["total_users"])
	require.Empty(t, body["skill_summary"])
	require.True(t, strings.HasSuffix(body["generated_at"].(string), "Z"))
}

func TestSkillErrorsNeverAttempted(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/analytics/skill/a01_10m_forward/errors", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillErrorsAggregated(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	// 5 attempts, 3 failed, with one recurring error at step 1.
	for i := 0; i < 5; i++ {
		w := do(t, srv, http.MethodPost, "/user/user_001/skill/a02_2m_backward/start-attempt", "")
		attemptID := decode(t, w)["attempt_id"].(string)
		if i < 3 {
			do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-error",
				`{"step_number": 1, "error_type": "wrong_direction", "expected_action": "move_backward", "actual_action": "move_forward"}`)
		}
		do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/complete",
			fmt.Sprintf(`{"success": %v}`, i >= 3))
	}

	w := do(t, srv, http.MethodGet, "/analytics/skill/a02_2m_backward/errors", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, float64(5), body["total_attempts"])
	require.Equal(t, float64(3), body["failed_attempts"])
	require.InDelta(t, 0.6, body["failure_rate"].(float64), 1e-9)

	most := body["most_difficult_step"].(map[string]any)
	require.Equal(t, float64(1), most["step_number"])
	require.Equal(t, float64(3), most["error_count"])
}

func TestUserSkillStatsRoute(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodGet, "/user/user_001/skill/a01_10m_forward/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, float64(0), body["total_attempts"])

	w = do(t, srv, http.MethodGet, "/user/user_001/skill/a99_moonwalk/stats", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlanRoute(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodPost, "/user/user_001/generate-plan", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Empty(t, body["your_common_errors"])
	require.Empty(t, body["skill_comparisons"])
	require.NotEmpty(t, body["recommended_skills"])
}

func TestRecommendedSkillsRoute(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodGet, "/user/user_001/recommended-skills", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "Foundation", body["current_phase"])
	require.Len(t, body["recommended_skills"], 3)
}

func TestClearProgressRoute(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodPost, "/user/user_001/skill/a01_10m_forward/start-attempt", "")
	attemptID := decode(t, w)["attempt_id"].(string)
	do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/complete", `{"success": true}`)

	w = do(t, srv, http.MethodPost, "/user/user_001/clear-progress", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["cleared"])

	w = do(t, srv, http.MethodGet, "/user/user_001/progress", "")
	require.Equal(t, float64(0), decode(t, w)["total_attempts"])

	// Clearing an already-clean user is a no-op, not an error.
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/clear-progress", "").Code)

	require.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/user/ghost/clear-progress", "").Code)
}

func TestSkillStepsRoute(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/skills/a02_2m_backward/steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "a02_2m_backward", body["skill_id"])
	require.Len(t, body["steps"], 3)

	require.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/skills/a99_moonwalk/steps", "").Code)
}

func TestCommonErrorsAndWeakStepsRoutes(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/user/user_001/create", "").Code)

	w := do(t, srv, http.MethodPost, "/user/user_001/skill/a02_2m_backward/start-attempt", "")
	attemptID := decode(t, w)["attempt_id"].(string)
	do(t, srv, http.MethodPost, "/attempt/"+attemptID+"/record-error",
		`{"step_number": 2, "error_type": "wrong_direction", "expected_action": "move_backward", "actual_action": "move_forward"}`)

	w = do(t, srv, http.MethodGet, "/user/user_001/common-errors", "")
	require.Equal(t, http.StatusOK, w.Code)
	errs := decode(t, w)["common_errors"].([]any)
	require.Len(t, errs, 1)

	w = do(t, srv, http.MethodGet, "/user/user_001/common-errors?skill_id=a01_10m_forward", "")
	require.Empty(t, decode(t, w)["common_errors"])

	w = do(t, srv, http.MethodGet, "/user/user_001/weak-steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	weak := decode(t, w)["weak_steps"].([]any)
	require.Len(t, weak, 1)

	w = do(t, srv, http.MethodGet, "/user/user_001/weak-steps?skill_id=a02_2m_backward", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["weak_steps"], 1)

	w = do(t, srv, http.MethodGet, "/user/user_001/weak-steps?skill_id=a01_10m_forward", "")
	require.Empty(t, decode(t, w)["weak_steps"])
}
