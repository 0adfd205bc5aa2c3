package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CoachingsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coaching", Name: "coachings_recorded_total", Help: "Coaching sessions recorded",
	})
	LeadershipChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coaching", Name: "leadership_changes_total", Help: "Leader/team pointer changes by kind",
	}, []string{"kind"})
	MembersArchived = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coaching", Name: "members_archived_total", Help: "Team members moved to the archive",
	})
	ReportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coaching", Name: "report_duration_seconds", Help: "Report computation latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coaching", Name: "http_requests_total", Help: "HTTP requests by route and status class",
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(CoachingsRecorded, LeadershipChanges, MembersArchived, ReportDuration, HTTPRequests)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveReport records how long a report took, from start until now
func ObserveReport(report string, start time.Time) {
	ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// LeadershipChanged counts an attach or detach of a leader/team pairing
func LeadershipChanged(kind string, n int64) {
	if n > 0 {
		LeadershipChanges.WithLabelValues(kind).Add(float64(n))
	}
}
