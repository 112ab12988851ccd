package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_total",
			Help: "Settled rounds by game",
		},
		[]string{"game"},
	)

	WageredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_wagered_total",
			Help: "Total units wagered by game",
		},
		[]string{"game"},
	)

	PayoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_payout_total",
			Help: "Total units paid out by game",
		},
		[]string{"game"},
	)

	BalanceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_balance_updates_total",
			Help: "Total player balance updates",
		},
	)
)

func Init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(WageredTotal)
	prometheus.MustRegister(PayoutTotal)
	prometheus.MustRegister(BalanceUpdates)
}

// Serve exposes /metrics on its own listener, away from the game API.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
