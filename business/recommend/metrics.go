package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendUsersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crew_recommend_users_total",
			Help: "Count of users handled by the crew recommendation batch, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(RecommendUsersTotal)
}
