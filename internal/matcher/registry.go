// file: internal/matcher/registry.go
// version: 1.0.0
// guid: b2824fdd-3873-45bf-bf40-79c9cbbabdd5

package matcher

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jdfalk/spotlight/internal/similarity"
)

var (
	// ErrInvalidInput reports unusable arguments: invalid UTF-8, an empty
	// metric name, a nil metric or a negative limit.
	ErrInvalidInput = similarity.ErrInvalidInput
	// ErrUnknownMetric reports a metric name that was never registered.
	ErrUnknownMetric = errors.New("no such registered metric")
	// ErrUnknownOption reports a configuration key other than metric or ignoreCase.
	ErrUnknownOption = errors.New("no such option")
	// ErrNoActiveMetric reports a search on an engine with nothing activated.
	ErrNoActiveMetric = errors.New("no active metric")
)

// Registry maps metric names to metrics. Entries are overwritten, never removed.
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]similarity.Metric
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]similarity.Metric)}
}

// Register stores m under name and reports whether an earlier entry was replaced.
func (r *Registry) Register(name string, m similarity.Metric) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("%w: metric name is empty", ErrInvalidInput)
	}
	if isNilMetric(m) {
		return false, fmt.Errorf("%w: metric %q is nil", ErrInvalidInput, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced := r.metrics[name]
	r.metrics[name] = m
	return replaced, nil
}

// Lookup returns the metric registered under name.
func (r *Registry) Lookup(name string) (similarity.Metric, error) {
	r.mu.RLock()
	m, ok := r.metrics[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered metrics.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.metrics)
}

func isNilMetric(m similarity.Metric) bool {
	if m == nil {
		return true
	}
	f, ok := m.(similarity.MetricFunc)
	return ok && f == nil
}
