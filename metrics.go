package ilog10

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// DecadeObserver counts observed values bucketed by decade, i.e. by
// floor(log10(x)). It is an opt-in convenience for callers that use
// log10 for histogram indexing; the core functions never touch it.
type DecadeObserver struct {
	decades *prometheus.CounterVec
}

// NewDecadeObserver registers and returns a DecadeObserver. Values are
// counted under a "decade" label holding floor(log10(x)), with x == 0
// counted in decade 0.
func NewDecadeObserver(reg prometheus.Registerer, opts ...ObserverOption) *DecadeObserver {
	counterOpts := prometheus.CounterOpts{
		Name: "ilog10_observed_values_total",
		Help: "Count of observed values by decimal decade (floor of log10).",
	}
	for _, o := range opts {
		o(&counterOpts)
	}

	vec := prometheus.NewCounterVec(counterOpts, []string{"decade"})
	reg.MustRegister(vec)

	return &DecadeObserver{decades: vec}
}

// Observe records one value.
func (o *DecadeObserver) Observe(x uint64) {
	var d uint8
	if x > 0 {
		d = Log10Floor(x)
	}
	o.decades.WithLabelValues(strconv.Itoa(int(d))).Inc()
}

// An ObserverOption lets you adjust the underlying counter metrics using
// With* funcs.
type ObserverOption func(*prometheus.CounterOpts)

// WithObserverSubsystem allows you to add a Subsystem to the decade
// counter metrics.
func WithObserverSubsystem(subsystem string) ObserverOption {
	return func(o *prometheus.CounterOpts) {
		o.Subsystem = subsystem
	}
}

// WithObserverConstLabels allows you to add custom ConstLabels to the
// decade counter metrics.
func WithObserverConstLabels(labels prometheus.Labels) ObserverOption {
	return func(o *prometheus.CounterOpts) {
		o.ConstLabels = labels
	}
}
