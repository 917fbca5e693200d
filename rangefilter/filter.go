package rangefilter

import (
	"sort"

	"github.com/iotaledger/ranges/configuration"
	"github.com/iotaledger/ranges/ds/valuerange"
	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
	"github.com/iotaledger/ranges/logger"
	"github.com/iotaledger/ranges/options"
	"github.com/iotaledger/ranges/stringify"
)

var (
	// ErrUnknownRange is returned if a range is addressed by a name that was not configured.
	ErrUnknownRange = ierrors.New("unknown range")

	// ErrNoRanges is returned if an operation needs at least one configured range.
	ErrNoRanges = ierrors.New("no ranges configured")
)

// Filter holds a set of named ValueRanges and checks values against them.
type Filter[T any] struct {
	ranges map[string]*valuerange.ValueRange[T]
	names  []string

	*logger.WrappedLogger
}

// New creates a Filter from a map of names to range notations (i.e. "[0..10)").
func New[T any](factory *valuerange.Factory[T], notations map[string]string, parseValue valuerange.ValueParser[T], opts ...options.Option[Filter[T]]) (*Filter[T], error) {
	f := options.Apply(&Filter[T]{
		ranges:        make(map[string]*valuerange.ValueRange[T], len(notations)),
		WrappedLogger: logger.NewWrappedLogger(nil),
	}, opts)

	for name, notation := range notations {
		valueRange, err := factory.Parse(notation, parseValue)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to parse range '%s'", name)
		}

		f.ranges[name] = valueRange
	}

	f.names = lo.Keys(f.ranges)
	sort.Strings(f.names)

	f.LogInfof("loaded %d ranges", len(f.names))
	for _, name := range f.names {
		f.LogDebugf("range '%s': %s", name, f.ranges[name])
	}

	return f, nil
}

// FromConfiguration creates a Filter from the notations stored below the given key of the configuration. The names of
// the ranges are lower cased like all configuration keys.
func FromConfiguration[T any](config *configuration.Configuration, key string, factory *valuerange.Factory[T], parseValue valuerange.ValueParser[T], opts ...options.Option[Filter[T]]) (*Filter[T], error) {
	f, err := New(factory, config.StringMap(key), parseValue, opts...)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to load ranges from configuration key '%s'", key)
	}

	return f, nil
}

// Range returns the ValueRange with the given name.
func (f *Filter[T]) Range(name string) (valueRange *valuerange.ValueRange[T], exists bool) {
	valueRange, exists = f.ranges[name]

	return valueRange, exists
}

// Names returns the sorted names of all ranges.
func (f *Filter[T]) Names() []string {
	return append([]string(nil), f.names...)
}

// Accepts returns true if the named range contains the value.
func (f *Filter[T]) Accepts(name string, value T) (bool, error) {
	valueRange, exists := f.ranges[name]
	if !exists {
		return false, ierrors.WithMessagef(ErrUnknownRange, "'%s'", name)
	}

	if !valueRange.Contains(value) {
		f.LogDebugf("value %s rejected by range '%s' %s", stringify.Interface(value), name, valueRange)

		return false, nil
	}

	return true, nil
}

// Matches returns the sorted names of all ranges that contain the value.
func (f *Filter[T]) Matches(value T) []string {
	return lo.Filter(f.names, func(name string) bool {
		return f.ranges[name].Contains(value)
	})
}

// Apply returns the values that are contained in the named range, keeping their order.
func (f *Filter[T]) Apply(name string, values []T) ([]T, error) {
	valueRange, exists := f.ranges[name]
	if !exists {
		return nil, ierrors.WithMessagef(ErrUnknownRange, "'%s'", name)
	}

	accepted := lo.Filter(values, valueRange.Contains)
	if rejectedCount := len(values) - len(accepted); rejectedCount > 0 {
		f.LogDebugf("range '%s' %s rejected %d of %d values", name, valueRange, rejectedCount, len(values))
	}

	return accepted, nil
}

// Hull returns the smallest ValueRange that encloses all ranges of the Filter.
func (f *Filter[T]) Hull() (*valuerange.ValueRange[T], error) {
	if len(f.names) == 0 {
		return nil, ErrNoRanges
	}

	return lo.Reduce(f.names[1:], func(hull *valuerange.ValueRange[T], name string) *valuerange.ValueRange[T] {
		return hull.Span(f.ranges[name])
	}, f.ranges[f.names[0]]), nil
}

// WithLogger sets the logger that is used to report loaded ranges and rejected values.
func WithLogger[T any](log *logger.Logger) options.Option[Filter[T]] {
	return func(f *Filter[T]) {
		f.WrappedLogger = logger.NewWrappedLogger(log)
	}
}
