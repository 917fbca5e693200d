package valuerange

import (
	"github.com/iotaledger/ranges/constraints"
	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
)

// Factory creates ValueRanges that share the same Comparator.
type Factory[T any] struct {
	compare Comparator[T]
}

// NewFactory creates a Factory that orders values with the given Comparator.
func NewFactory[T any](compare Comparator[T]) *Factory[T] {
	return &Factory[T]{
		compare: compare,
	}
}

// OrderedFactory creates a Factory for values that support the < and > operators.
func OrderedFactory[T constraints.Ordered]() *Factory[T] {
	return NewFactory[T](lo.Comparator[T])
}

// ComparableFactory creates a Factory for values that bring their own Compare method (i.e. time.Time).
func ComparableFactory[T constraints.Comparable[T]]() *Factory[T] {
	return NewFactory[T](lo.CompareMethod[T])
}

// All returns a ValueRange that contains all possible values.
func (f *Factory[T]) All() *ValueRange[T] {
	return f.mustCreate(belowAllCut[T](), aboveAllCut[T]())
}

// AtLeast returns a ValueRange that contains all values greater than or equal to lower.
func (f *Factory[T]) AtLeast(lower T) *ValueRange[T] {
	return f.mustCreate(belowValueCut(lower), aboveAllCut[T]())
}

// AtMost returns a ValueRange that contains all values less than or equal to upper.
func (f *Factory[T]) AtMost(upper T) *ValueRange[T] {
	return f.mustCreate(belowAllCut[T](), aboveValueCut(upper))
}

// GreaterThan returns a ValueRange that contains all values strictly greater than lower.
func (f *Factory[T]) GreaterThan(lower T) *ValueRange[T] {
	return f.mustCreate(aboveValueCut(lower), aboveAllCut[T]())
}

// LessThan returns a ValueRange that contains all values strictly less than upper.
func (f *Factory[T]) LessThan(upper T) *ValueRange[T] {
	return f.mustCreate(belowAllCut[T](), belowValueCut(upper))
}

// Singleton returns a ValueRange that contains only the given value.
func (f *Factory[T]) Singleton(value T) *ValueRange[T] {
	return f.mustCreate(belowValueCut(value), aboveValueCut(value))
}

// Closed returns a ValueRange that contains all values greater than or equal to lower and less than or equal to upper.
func (f *Factory[T]) Closed(lower, upper T) (*ValueRange[T], error) {
	return newValueRange(belowValueCut(lower), aboveValueCut(upper), f.compare)
}

// Open returns a ValueRange that contains all values strictly greater than lower and strictly less than upper.
func (f *Factory[T]) Open(lower, upper T) (*ValueRange[T], error) {
	return newValueRange(aboveValueCut(lower), belowValueCut(upper), f.compare)
}

// OpenClosed returns a ValueRange that contains all values strictly greater than lower and less than or equal to upper.
func (f *Factory[T]) OpenClosed(lower, upper T) (*ValueRange[T], error) {
	return newValueRange(aboveValueCut(lower), aboveValueCut(upper), f.compare)
}

// ClosedOpen returns a ValueRange that contains all values greater than or equal to lower and strictly less than upper.
func (f *Factory[T]) ClosedOpen(lower, upper T) (*ValueRange[T], error) {
	return newValueRange(belowValueCut(lower), belowValueCut(upper), f.compare)
}

// EncloseAll returns the minimal closed ValueRange that contains all the given values. It returns ErrInvalidArgument if
// no values are given.
func (f *Factory[T]) EncloseAll(values []T) (*ValueRange[T], error) {
	lower, ok := lo.MinBy(values, f.compare)
	if !ok {
		return nil, ierrors.WithMessage(ErrInvalidArgument, "can not enclose an empty set of values")
	}

	upper, _ := lo.MaxBy(values, f.compare)

	return f.Closed(lower, upper)
}

// mustCreate builds the shapes that are valid for every endpoint.
func (f *Factory[T]) mustCreate(lowerCut, upperCut cut[T]) *ValueRange[T] {
	return lo.PanicOnErr(newValueRange(lowerCut, upperCut, f.compare))
}

// region ordered shortcuts ////////////////////////////////////////////////////////////////////////////////////////////

// All returns a ValueRange that contains all possible values.
func All[T constraints.Ordered]() *ValueRange[T] {
	return OrderedFactory[T]().All()
}

// AtLeast returns a ValueRange that contains all values greater than or equal to lower.
func AtLeast[T constraints.Ordered](lower T) *ValueRange[T] {
	return OrderedFactory[T]().AtLeast(lower)
}

// AtMost returns a ValueRange that contains all values less than or equal to upper.
func AtMost[T constraints.Ordered](upper T) *ValueRange[T] {
	return OrderedFactory[T]().AtMost(upper)
}

// GreaterThan returns a ValueRange that contains all values strictly greater than lower.
func GreaterThan[T constraints.Ordered](lower T) *ValueRange[T] {
	return OrderedFactory[T]().GreaterThan(lower)
}

// LessThan returns a ValueRange that contains all values strictly less than upper.
func LessThan[T constraints.Ordered](upper T) *ValueRange[T] {
	return OrderedFactory[T]().LessThan(upper)
}

// Singleton returns a ValueRange that contains only the given value.
func Singleton[T constraints.Ordered](value T) *ValueRange[T] {
	return OrderedFactory[T]().Singleton(value)
}

// Closed returns a ValueRange that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T constraints.Ordered](lower, upper T) (*ValueRange[T], error) {
	return OrderedFactory[T]().Closed(lower, upper)
}

// Open returns a ValueRange that contains all values strictly greater than lower and strictly less than upper.
func Open[T constraints.Ordered](lower, upper T) (*ValueRange[T], error) {
	return OrderedFactory[T]().Open(lower, upper)
}

// OpenClosed returns a ValueRange that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T constraints.Ordered](lower, upper T) (*ValueRange[T], error) {
	return OrderedFactory[T]().OpenClosed(lower, upper)
}

// ClosedOpen returns a ValueRange that contains all values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T constraints.Ordered](lower, upper T) (*ValueRange[T], error) {
	return OrderedFactory[T]().ClosedOpen(lower, upper)
}

// EncloseAll returns the minimal closed ValueRange that contains all the given values.
func EncloseAll[T constraints.Ordered](values ...T) (*ValueRange[T], error) {
	return OrderedFactory[T]().EncloseAll(values)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
