package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHandlerExposesMetrics(t *testing.T) {
	CoachingsRecorded.Inc()
	MembersArchived.Inc()
	ObserveReport("team_performance", time.Now())
	LeadershipChanged("attach", 1)

	body := scrape(t)
	assert.Contains(t, body, "coaching_coachings_recorded_total")
	assert.Contains(t, body, "coaching_members_archived_total")
	assert.Contains(t, body, `coaching_report_duration_seconds_count{report="team_performance"}`)
	assert.Contains(t, body, `coaching_leadership_changes_total{kind="attach"}`)
}

func TestLeadershipChangedIgnoresZero(t *testing.T) {
	LeadershipChanged("noop", 0)
	assert.NotContains(t, scrape(t), `kind="noop"`)
}
