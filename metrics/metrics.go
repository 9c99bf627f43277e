/*
Copyright © 2015-2026 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package metrics exports session activity as Prometheus metrics. Pass the
// result of New to highs.WithObserver.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/costela/highs"
)

const namespace = "highs"

// Observer implements highs.Observer. One Observer can be shared by any
// number of sessions.
type Observer struct {
	OpenSessions  prometheus.Gauge
	CallErrors    *prometheus.CounterVec   // by op
	Solves        *prometheus.CounterVec   // by status and model_status
	SolveDuration *prometheus.HistogramVec // by model_status
}

var _ highs.Observer = (*Observer)(nil)

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		OpenSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_sessions",
			Help:      "Number of sessions holding a native solver instance.",
		}),
		CallErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "call_errors_total",
			Help:      "Native calls that failed or returned an unknown status.",
		}, []string{"op"}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves.",
		}, []string{"status", "model_status"}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time spent in the native solver.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"model_status"}),
	}

	if reg == nil {
		return o, nil
	}

	for _, c := range []prometheus.Collector{o.OpenSessions, o.CallErrors, o.Solves, o.SolveDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Observer) SessionCreated() {
	o.OpenSessions.Inc()
}

func (o *Observer) SessionDisposed() {
	o.OpenSessions.Dec()
}

func (o *Observer) CallFailed(op string) {
	o.CallErrors.WithLabelValues(op).Inc()
}

func (o *Observer) SolveFinished(status highs.Status, modelStatus highs.ModelStatus, elapsed time.Duration) {
	o.Solves.WithLabelValues(status.String(), modelStatus.String()).Inc()
	o.SolveDuration.WithLabelValues(modelStatus.String()).Observe(elapsed.Seconds())
}
