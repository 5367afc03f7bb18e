// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

package matcher

import (
	"fmt"
	"log"
	"math"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/jdfalk/spotlight/internal/cache"
	"github.com/jdfalk/spotlight/internal/metrics"
	"github.com/jdfalk/spotlight/internal/similarity"
)

// Option names a setting accepted by Configure.
type Option string

const (
	OptionMetric     Option = "metric"
	OptionIgnoreCase Option = "ignoreCase"
)

// CaseFolder normalizes a string before comparison when ignoreCase is on.
// It must be safe for concurrent use.
type CaseFolder func(string) string

type scoreKey struct {
	generation uint64
	needle     string
	candidate  string
}

// Engine holds a metric registry together with the active ranking policy:
// which metric scores candidates and whether case is ignored.
type Engine struct {
	mu         sync.RWMutex
	registry   *Registry
	active     similarity.Metric
	activeName string
	generation uint64
	ignoreCase bool
	fold       CaseFolder
	scores     *cache.Cache[scoreKey, float64]
}

type engineOptions struct {
	suite      similarity.Suite
	builtins   bool
	extras     bool
	ignoreCase bool
	fold       CaseFolder
	cacheTTL   time.Duration
	cacheSize  int
}

// EngineOption customizes New.
type EngineOption func(*engineOptions)

// WithUnits selects the text units the built-in metrics compare.
func WithUnits(u similarity.Units) EngineOption {
	return func(o *engineOptions) { o.suite.Units = u }
}

// WithGapScorer replaces the default Smith-Waterman gap scorer of the built-ins.
func WithGapScorer(g similarity.GapScorer) EngineOption {
	return func(o *engineOptions) { o.suite.Gap = g }
}

// WithoutBuiltins starts from an empty registry with no active metric.
func WithoutBuiltins() EngineOption {
	return func(o *engineOptions) { o.builtins = false }
}

// WithExtraMetrics also registers the optional subsequence and fuzzyFind metrics.
func WithExtraMetrics() EngineOption {
	return func(o *engineOptions) { o.extras = true }
}

// WithIgnoreCase sets the initial case sensitivity. The default ignores case.
func WithIgnoreCase(ignore bool) EngineOption {
	return func(o *engineOptions) { o.ignoreCase = ignore }
}

// WithCaseFolder replaces the default Unicode lowercasing.
func WithCaseFolder(fold CaseFolder) EngineOption {
	return func(o *engineOptions) { o.fold = fold }
}

// WithScoreCache memoizes scores for ttl, keeping at most maxEntries.
// A non-positive ttl disables the cache.
func WithScoreCache(ttl time.Duration, maxEntries int) EngineOption {
	return func(o *engineOptions) {
		o.cacheTTL = ttl
		o.cacheSize = maxEntries
	}
}

// New returns an engine with lcs, levenshtein and smithWaterman registered
// and lcs active, unless WithoutBuiltins is given.
func New(opts ...EngineOption) *Engine {
	o := engineOptions{builtins: true, ignoreCase: true}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		registry:   NewRegistry(),
		ignoreCase: o.ignoreCase,
		fold:       o.fold,
	}
	if o.cacheTTL > 0 {
		e.scores = cache.New[scoreKey, float64](o.cacheTTL, o.cacheSize)
	}

	if o.builtins {
		for name, m := range o.suite.Builtins() {
			_, _ = e.registry.Register(name, m)
		}
		lcs, _ := e.registry.Lookup(similarity.NameLCS)
		e.activateLocked(similarity.NameLCS, lcs)
	}
	if o.extras {
		for name, m := range similarity.Extras() {
			_, _ = e.registry.Register(name, m)
		}
	}
	metrics.SetRegisteredMetrics(e.registry.Len())
	return e
}

// Register stores m under name, replacing any earlier metric with that name.
// With makeActive the metric also becomes active in the same step.
func (e *Engine) Register(name string, m similarity.Metric, makeActive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	replaced, err := e.registry.Register(name, m)
	if err != nil {
		return err
	}
	if replaced {
		log.Printf("[INFO] matcher: metric %q re-registered", name)
	}
	if makeActive {
		e.activateLocked(name, m)
	}
	metrics.SetRegisteredMetrics(e.registry.Len())
	return nil
}

// Lookup returns the metric registered under name.
func (e *Engine) Lookup(name string) (similarity.Metric, error) {
	return e.registry.Lookup(name)
}

// Names lists the registered metric names.
func (e *Engine) Names() []string {
	return e.registry.Names()
}

// SetMetric activates the metric registered under name. On failure the
// previously active metric stays in place.
func (e *Engine) SetMetric(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.registry.Lookup(name)
	if err != nil {
		return err
	}
	e.activateLocked(name, m)
	metrics.IncConfigChange(string(OptionMetric))
	return nil
}

// SetIgnoreCase toggles case-insensitive comparison.
func (e *Engine) SetIgnoreCase(ignore bool) {
	e.mu.Lock()
	e.ignoreCase = ignore
	e.mu.Unlock()
	metrics.IncConfigChange(string(OptionIgnoreCase))
}

// Configure applies one setting. OptionMetric takes a registered metric name;
// OptionIgnoreCase takes any value and uses its truthiness.
func (e *Engine) Configure(option Option, value any) error {
	switch option {
	case OptionMetric:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownMetric, value)
		}
		return e.SetMetric(name)
	case OptionIgnoreCase:
		e.SetIgnoreCase(truthy(value))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, string(option))
	}
}

// ActiveMetricName returns the name the active metric was activated under,
// or "" when nothing is active.
func (e *Engine) ActiveMetricName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activeName
}

// IgnoreCase reports whether comparisons fold case.
func (e *Engine) IgnoreCase() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ignoreCase
}

// activateLocked captures m by reference; later re-registration of name does
// not change the active metric.
func (e *Engine) activateLocked(name string, m similarity.Metric) {
	e.active = m
	e.activeName = name
	e.generation++
	if e.scores != nil {
		e.scores.InvalidateAll()
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b
		}
		return x != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// ranksBefore orders scores descending with NaN last.
func ranksBefore(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a > b
}

func sortByScore(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return ranksBefore(results[i].Score, results[j].Score)
	})
}
