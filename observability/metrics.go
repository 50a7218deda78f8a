package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	feedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "feed",
		Name:      "requests_total",
		Help:      "Number of social feed requests served.",
	})
	feedPostsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "feed",
		Name:      "posts_served_total",
		Help:      "Number of feed posts returned across all requests.",
	})
	feedUnjoinable = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "feed",
		Name:      "unjoinable_events_total",
		Help:      "Registered trainings skipped because their plan or day no longer resolves.",
	})
	feedBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fittracker",
		Subsystem: "feed",
		Name:      "build_duration_seconds",
		Help:      "Wall time of the full join-filter-sort-assemble pipeline.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(feedRequests, feedPostsServed, feedUnjoinable, feedBuildDuration)
}

// RecordFeedBuild counts one served feed request.
func RecordFeedBuild(posts int, elapsed time.Duration) {
	feedRequests.Inc()
	feedPostsServed.Add(float64(posts))
	feedBuildDuration.Observe(elapsed.Seconds())
}

// RecordUnjoinableEvents counts events dropped during the join.
func RecordUnjoinableEvents(n int) {
	if n > 0 {
		feedUnjoinable.Add(float64(n))
	}
}
