package valuerange

import (
	"fmt"

	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
	"github.com/iotaledger/ranges/stringify"
)

// Comparator defines the total order of the values of a ValueRange. It returns a negative number if a is smaller than
// b, a positive number if a is bigger than b and 0 if both values are equal.
type Comparator[T any] func(a, b T) int

// region cutKind //////////////////////////////////////////////////////////////////////////////////////////////////////

// cutKind tells the four different kinds of cuts apart. The declaration order matches the order of cuts that share the
// same endpoint.
type cutKind uint8

const (
	// belowAll is the cut below every value (-∞).
	belowAll cutKind = iota

	// belowValue is the cut that lies just beneath its endpoint.
	belowValue

	// aboveValue is the cut that lies just above its endpoint.
	aboveValue

	// aboveAll is the cut above every value (+∞).
	aboveAll
)

// cutKindNames contains a dictionary of the names of cutKinds.
var cutKindNames = [...]string{
	"belowAll",
	"belowValue",
	"aboveValue",
	"aboveAll",
}

// String returns a human-readable version of the cutKind.
func (c cutKind) String() string {
	if int(c) >= len(cutKindNames) {
		return fmt.Sprintf("cutKind(%X)", uint8(c))
	}

	return cutKindNames[c]
}

// infinity returns -1 for belowAll, 1 for aboveAll and 0 for the kinds that carry an endpoint.
func (c cutKind) infinity() int {
	switch c {
	case belowAll:
		return -1
	case aboveAll:
		return 1
	default:
		return 0
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region cut //////////////////////////////////////////////////////////////////////////////////////////////////////////

// cut is a point on the line of values extended by -∞ and +∞ that divides the values into the ones below and the ones
// above the cut. Two cuts (lower and upper) describe a ValueRange.
//
// The endpoint is only set for belowValue and aboveValue.
type cut[T any] struct {
	kind     cutKind
	endpoint T
}

func belowAllCut[T any]() cut[T] {
	return cut[T]{kind: belowAll}
}

func aboveAllCut[T any]() cut[T] {
	return cut[T]{kind: aboveAll}
}

func belowValueCut[T any](endpoint T) cut[T] {
	return cut[T]{kind: belowValue, endpoint: endpoint}
}

func aboveValueCut[T any](endpoint T) cut[T] {
	return cut[T]{kind: aboveValue, endpoint: endpoint}
}

// bounded returns true if the cut carries an endpoint.
func (c cut[T]) bounded() bool {
	return c.kind.infinity() == 0
}

// compare returns -1, 0 or 1 if the cut is smaller, equal or bigger than the other cut.
//
// belowAll and aboveAll are the smallest and the biggest cut, the other cuts are ordered by their endpoint and if the
// endpoints are equal, belowValue comes before aboveValue.
func (c cut[T]) compare(other cut[T], compare Comparator[T]) int {
	if !c.bounded() || !other.bounded() {
		return lo.Comparator(c.kind.infinity(), other.kind.infinity())
	}

	if result := compare(c.endpoint, other.endpoint); result != 0 {
		return lo.Cond(result < 0, -1, 1)
	}

	return lo.Comparator(c.kind, other.kind)
}

// equal returns true if both cuts sit at the same position.
func (c cut[T]) equal(other cut[T], compare Comparator[T]) bool {
	return c.compare(other, compare) == 0
}

// isLessThan returns true if the cut lies below the given value.
func (c cut[T]) isLessThan(value T, compare Comparator[T]) bool {
	switch c.kind {
	case belowAll:
		return true
	case belowValue:
		return compare(c.endpoint, value) <= 0
	case aboveValue:
		return compare(c.endpoint, value) < 0
	default:
		return false
	}
}

// typeAsLowerBound returns the BoundType of the cut when it is used as the lower bound of a ValueRange.
func (c cut[T]) typeAsLowerBound() BoundType {
	return lo.Cond(c.kind == belowAll || c.kind == belowValue, BoundTypeClosed, BoundTypeOpen)
}

// typeAsUpperBound returns the BoundType of the cut when it is used as the upper bound of a ValueRange.
func (c cut[T]) typeAsUpperBound() BoundType {
	return lo.Cond(c.kind == aboveAll || c.kind == aboveValue, BoundTypeClosed, BoundTypeOpen)
}

// endpointValue returns the endpoint of the cut or ErrInvalidState if the cut lies at -∞ or +∞.
func (c cut[T]) endpointValue() (endpoint T, err error) {
	if !c.bounded() {
		return endpoint, ierrors.WithMessagef(ErrInvalidState, "%s has no endpoint", c.kind)
	}

	return c.endpoint, nil
}

// describeAsLowerBound returns the notation of the cut as the lower bound of a ValueRange.
func (c cut[T]) describeAsLowerBound() (string, error) {
	switch c.kind {
	case belowAll:
		return "(-∞", nil
	case belowValue:
		return "[" + stringify.Interface(c.endpoint), nil
	case aboveValue:
		return "(" + stringify.Interface(c.endpoint), nil
	default:
		return "", ierrors.WithMessagef(ErrInvalidState, "%s can not be used as a lower bound", c.kind)
	}
}

// describeAsUpperBound returns the notation of the cut as the upper bound of a ValueRange.
func (c cut[T]) describeAsUpperBound() (string, error) {
	switch c.kind {
	case aboveAll:
		return "∞)", nil
	case belowValue:
		return stringify.Interface(c.endpoint) + ")", nil
	case aboveValue:
		return stringify.Interface(c.endpoint) + "]", nil
	default:
		return "", ierrors.WithMessagef(ErrInvalidState, "%s can not be used as an upper bound", c.kind)
	}
}

// String returns a human-readable version of the cut.
func (c cut[T]) String() string {
	if !c.bounded() {
		return stringify.Struct("cut", stringify.NewStructField("kind", c.kind))
	}

	return stringify.Struct("cut",
		stringify.NewStructField("kind", c.kind),
		stringify.NewStructField("endpoint", c.endpoint),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
