// file: internal/matcher/default.go
// version: 1.0.0
// guid: abeda3ba-5d06-4d2f-b264-a791b5b48109

package matcher

import (
	"sync"

	"github.com/jdfalk/spotlight/internal/similarity"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine, created on first use with the
// built-in metrics and lcs active.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Register registers m on the default engine.
func Register(name string, m similarity.Metric, makeActive bool) error {
	return Default().Register(name, m, makeActive)
}

// Search ranks haystack on the default engine.
func Search(needle string, haystack []string, limit int) ([]string, error) {
	return Default().Search(needle, haystack, limit)
}

// Configure applies a setting to the default engine.
func Configure(option Option, value any) error {
	return Default().Configure(option, value)
}
