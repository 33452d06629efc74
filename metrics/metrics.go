// SPDX-License-Identifier: MIT

// Package metrics instruments the command loop with Prometheus collectors
// registered on a private registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for CommandsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected" // a domain error the user is told about
	OutcomeInvalid  = "invalid"  // malformed line, unknown command, bad number
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "socialnet"

// Recorder owns the collectors and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	commands    *prometheus.CounterVec
	users       prometheus.Gauge
	friendships prometheus.Gauge
	posts       prometheus.Gauge
}

// NewRecorder builds and registers all collectors under namespace
// (DefaultNamespace when empty).
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands processed, by command name and outcome.",
		}, []string{"command", "outcome"}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users",
			Help:      "Registered users.",
		}),
		friendships: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "friendships",
			Help:      "Friendships (undirected edges).",
		}),
		posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "posts",
			Help:      "Stored posts across all users.",
		}),
	}
	r.registry.MustRegister(r.commands, r.users, r.friendships, r.posts)

	return r
}

// Command counts one processed command. A nil Recorder is a no-op.
func (r *Recorder) Command(name, outcome string) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(name, outcome).Inc()
}

// Sizes sets the size gauges. A nil Recorder is a no-op.
func (r *Recorder) Sizes(users, friendships, posts int) {
	if r == nil {
		return
	}
	r.users.Set(float64(users))
	r.friendships.Set(float64(friendships))
	r.posts.Set(float64(posts))
}

// Registry exposes the private registry (for tests and custom exporters).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
