package valuerange

import (
	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
)

// ValueRange defines the boundaries around a contiguous span of values (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values. Each ValueRange may be bounded or unbounded. If bounded,
// there is an associated endpoint value, and the range is considered to be either open (does not include the endpoint)
// or closed (includes the endpoint) on that side.
//
// With three possibilities on each side, this yields nine basic types of ranges, enumerated below:
//
//	Notation    Definition          Factory method
//	(a..b)      {x | a < x < b}     Open
//	[a..b]      {x | a <= x <= b}   Closed
//	(a..b]      {x | a < x <= b}    OpenClosed
//	[a..b)      {x | a <= x < b}    ClosedOpen
//	(a..∞)      {x | x > a}         GreaterThan
//	[a..∞)      {x | x >= a}        AtLeast
//	(-∞..b)     {x | x < b}         LessThan
//	(-∞..b]     {x | x <= b}        AtMost
//	(-∞..∞)     {x}                 All
//
// When both endpoints exist, the upper endpoint may not be less than the lower. The endpoints may be equal only if at
// least one of the bounds is closed ([a..a) and (a..a] are empty, (a..a) can not be constructed).
//
// A ValueRange is immutable, so it can be shared between goroutines without synchronization. Operations on two
// ValueRanges compare with the Comparator of the receiver. Intersection and Span may return the other operand as is,
// in which case the result keeps the Comparator of that operand.
type ValueRange[T any] struct {
	lowerCut cut[T]
	upperCut cut[T]
	compare  Comparator[T]
}

// newValueRange is the only place where ValueRanges are created. It rejects inverted cuts as well as +∞ as a lower and
// -∞ as an upper cut.
func newValueRange[T any](lowerCut, upperCut cut[T], compare Comparator[T]) (*ValueRange[T], error) {
	if lowerCut.compare(upperCut, compare) > 0 || lowerCut.equal(aboveAllCut[T](), compare) || upperCut.equal(belowAllCut[T](), compare) {
		return nil, ierrors.WithMessagef(ErrConstructionFailed, "invalid bounds %s and %s", lowerCut, upperCut)
	}

	return &ValueRange[T]{
		lowerCut: lowerCut,
		upperCut: upperCut,
		compare:  compare,
	}, nil
}

// HasLowerBound returns true if this ValueRange has a lower endpoint.
func (v *ValueRange[T]) HasLowerBound() bool {
	return v.lowerCut.kind != belowAll
}

// HasUpperBound returns true if this ValueRange has an upper endpoint.
func (v *ValueRange[T]) HasUpperBound() bool {
	return v.upperCut.kind != aboveAll
}

// LowerEndPoint returns the lower endpoint of this ValueRange. It returns ErrInvalidState if the ValueRange has no
// lower bound - check HasLowerBound() before calling this method.
func (v *ValueRange[T]) LowerEndPoint() (T, error) {
	endpoint, err := v.lowerCut.endpointValue()
	if err != nil {
		return endpoint, ierrors.Wrap(err, "ValueRange is unbounded below")
	}

	return endpoint, nil
}

// UpperEndPoint returns the upper endpoint of this ValueRange. It returns ErrInvalidState if the ValueRange has no
// upper bound - check HasUpperBound() before calling this method.
func (v *ValueRange[T]) UpperEndPoint() (T, error) {
	endpoint, err := v.upperCut.endpointValue()
	if err != nil {
		return endpoint, ierrors.Wrap(err, "ValueRange is unbounded above")
	}

	return endpoint, nil
}

// LowerBoundType returns the type of this ValueRange's lower bound - BoundTypeClosed if the range includes its lower
// endpoint and BoundTypeOpen if it does not.
func (v *ValueRange[T]) LowerBoundType() BoundType {
	return v.lowerCut.typeAsLowerBound()
}

// UpperBoundType returns the type of this ValueRange's upper bound - BoundTypeClosed if the range includes its upper
// endpoint and BoundTypeOpen if it does not.
func (v *ValueRange[T]) UpperBoundType() BoundType {
	return v.upperCut.typeAsUpperBound()
}

// Empty returns true if this range is of the form [v..v) or (v..v].
//
// Note that certain discrete ranges such as the integer range (3..4) are not considered empty, even though they contain
// no actual values.
func (v *ValueRange[T]) Empty() bool {
	return v.lowerCut.equal(v.upperCut, v.compare)
}

// Contains returns true if value is within the bounds of this ValueRange.
func (v *ValueRange[T]) Contains(value T) bool {
	return v.lowerCut.isLessThan(value, v.compare) && !v.upperCut.isLessThan(value, v.compare)
}

// ContainsAll returns true if every one of the given values is contained in this ValueRange (true for no values).
func (v *ValueRange[T]) ContainsAll(values []T) bool {
	return lo.Every(values, v.Contains)
}

// Compare returns 0 if the ValueRange contains the given value, -1 if its contained values are smaller and 1 if they
// are bigger.
func (v *ValueRange[T]) Compare(value T) int {
	switch {
	case !v.lowerCut.isLessThan(value, v.compare):
		return 1
	case v.upperCut.isLessThan(value, v.compare):
		return -1
	default:
		return 0
	}
}

// Encloses returns true if the bounds of the other ValueRange do not extend outside the bounds of this ValueRange.
func (v *ValueRange[T]) Encloses(other *ValueRange[T]) bool {
	return v.lowerCut.compare(other.lowerCut, v.compare) <= 0 && v.upperCut.compare(other.upperCut, v.compare) >= 0
}

// IsConnected returns true if there exists a (possibly empty) ValueRange which is enclosed by both this ValueRange and
// the other one (i.e. [2..4) and [4..6) are connected while [2..4) and (4..6) are not).
func (v *ValueRange[T]) IsConnected(other *ValueRange[T]) bool {
	return v.lowerCut.compare(other.upperCut, v.compare) <= 0 && other.lowerCut.compare(v.upperCut, v.compare) <= 0
}

// Intersection returns the maximal ValueRange that is enclosed by both this ValueRange and the other one. It returns
// ErrInvalidArgument if the ValueRanges are not connected. If one of the operands already is the intersection, it is
// returned instead of a new ValueRange.
func (v *ValueRange[T]) Intersection(other *ValueRange[T]) (*ValueRange[T], error) {
	if !v.IsConnected(other) {
		return nil, ierrors.WithMessagef(ErrInvalidArgument, "%s is not connected to %s", v, other)
	}

	lowerComparison := v.lowerCut.compare(other.lowerCut, v.compare)
	upperComparison := v.upperCut.compare(other.upperCut, v.compare)

	switch {
	case lowerComparison >= 0 && upperComparison <= 0:
		return v, nil
	case lowerComparison <= 0 && upperComparison >= 0:
		return other, nil
	default:
		return newValueRange(
			lo.Cond(lowerComparison >= 0, v.lowerCut, other.lowerCut),
			lo.Cond(upperComparison <= 0, v.upperCut, other.upperCut),
			v.compare,
		)
	}
}

// Span returns the minimal ValueRange that encloses both this ValueRange and the other one. If the ValueRanges are not
// connected, the result also contains the gap between them. If one of the operands already is the span, it is returned
// instead of a new ValueRange.
func (v *ValueRange[T]) Span(other *ValueRange[T]) *ValueRange[T] {
	lowerComparison := v.lowerCut.compare(other.lowerCut, v.compare)
	upperComparison := v.upperCut.compare(other.upperCut, v.compare)

	switch {
	case lowerComparison <= 0 && upperComparison >= 0:
		return v
	case lowerComparison >= 0 && upperComparison <= 0:
		return other
	default:
		// the smaller lower cut can never be above the bigger upper cut
		return lo.PanicOnErr(newValueRange(
			lo.Cond(lowerComparison <= 0, v.lowerCut, other.lowerCut),
			lo.Cond(upperComparison >= 0, v.upperCut, other.upperCut),
			v.compare,
		))
	}
}

// And is an alias for Intersection.
func (v *ValueRange[T]) And(other *ValueRange[T]) (*ValueRange[T], error) {
	return v.Intersection(other)
}

// Or is an alias for Span.
func (v *ValueRange[T]) Or(other *ValueRange[T]) *ValueRange[T] {
	return v.Span(other)
}

// Equal returns true if both ValueRanges have the same bounds.
func (v *ValueRange[T]) Equal(other *ValueRange[T]) bool {
	if v == other {
		return true
	}

	if v == nil || other == nil {
		return false
	}

	return v.lowerCut.equal(other.lowerCut, v.compare) && v.upperCut.equal(other.upperCut, v.compare)
}

// NotEqual returns true if the ValueRanges have different bounds.
func (v *ValueRange[T]) NotEqual(other *ValueRange[T]) bool {
	return !v.Equal(other)
}

// MarshalText returns the notation of the ValueRange (see String).
func (v *ValueRange[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// String returns the notation of the ValueRange, i.e. "[1..5)" or "(-∞..∞)".
func (v *ValueRange[T]) String() string {
	if v == nil {
		return "<nil>"
	}

	// the constructor rules out the bounds that can not be described
	return lo.PanicOnErr(v.lowerCut.describeAsLowerBound()) + ".." + lo.PanicOnErr(v.upperCut.describeAsUpperBound())
}
