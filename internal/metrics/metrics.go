package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_login_attempts_total",
		Help: "Number of login attempts grouped by principal kind and status.",
	}, []string{"kind", "status"})

	commentCreations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_comments_created_total",
		Help: "Number of created comments grouped by target kind.",
	}, []string{"target"})

	likeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_like_toggles_total",
		Help: "Number of like toggles grouped by resulting state.",
	}, []string{"result"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(kind, status string) {
	loginAttempts.WithLabelValues(kind, status).Inc()
}

// IncComment increments the created-comment counter.
func IncComment(target string) {
	commentCreations.WithLabelValues(target).Inc()
}

// IncLikeToggle increments the like-toggle counter.
func IncLikeToggle(liked bool) {
	if liked {
		likeToggles.WithLabelValues("liked").Inc()
	} else {
		likeToggles.WithLabelValues("unliked").Inc()
	}
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
