package valuerange

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/ranges/constraints"
	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
)

func TestValueRange_All(t *testing.T) {
	valueRange := All[int]()

	require.False(t, valueRange.HasLowerBound())
	require.False(t, valueRange.HasUpperBound())
	require.Equal(t, BoundTypeClosed, valueRange.LowerBoundType())
	require.Equal(t, BoundTypeClosed, valueRange.UpperBoundType())
	require.False(t, valueRange.Empty())
	require.Equal(t, "(-∞..∞)", valueRange.String())

	for _, value := range []int{-1 << 62, -1, 0, 1, 1 << 62} {
		require.True(t, valueRange.Contains(value))
		require.Equal(t, 0, valueRange.Compare(value))
	}

	_, err := valueRange.LowerEndPoint()
	require.True(t, ierrors.Is(err, ErrInvalidState))

	_, err = valueRange.UpperEndPoint()
	require.True(t, ierrors.Is(err, ErrInvalidState))
}

func TestValueRange_Closed(t *testing.T) {
	valueRange := lo.PanicOnErr(Closed(-10, 10))

	require.True(t, valueRange.HasLowerBound())
	require.True(t, valueRange.HasUpperBound())
	require.Equal(t, BoundTypeClosed, valueRange.LowerBoundType())
	require.Equal(t, BoundTypeClosed, valueRange.UpperBoundType())
	require.True(t, valueRange.Contains(-10))
	require.True(t, valueRange.Contains(10))
	require.False(t, valueRange.Contains(11))
	require.False(t, valueRange.Contains(-11))
	require.Equal(t, "[-10..10]", valueRange.String())

	lowerEndPoint, err := valueRange.LowerEndPoint()
	require.NoError(t, err)
	require.Equal(t, -10, lowerEndPoint)

	upperEndPoint, err := valueRange.UpperEndPoint()
	require.NoError(t, err)
	require.Equal(t, 10, upperEndPoint)
}

func TestValueRange_Open(t *testing.T) {
	valueRange := lo.PanicOnErr(Open(-10, 10))

	require.Equal(t, BoundTypeOpen, valueRange.LowerBoundType())
	require.Equal(t, BoundTypeOpen, valueRange.UpperBoundType())
	require.False(t, valueRange.Contains(-10))
	require.True(t, valueRange.Contains(-9))
	require.True(t, valueRange.Contains(9))
	require.False(t, valueRange.Contains(10))
	require.Equal(t, "(-10..10)", valueRange.String())
}

func TestValueRange_UnboundedSides(t *testing.T) {
	atLeast := AtLeast(0)
	require.Equal(t, "[0..∞)", atLeast.String())
	require.True(t, atLeast.HasLowerBound())
	require.False(t, atLeast.HasUpperBound())
	require.Equal(t, BoundTypeClosed, atLeast.LowerBoundType())
	require.True(t, atLeast.Contains(0))
	require.False(t, atLeast.Contains(-1))

	_, err := atLeast.UpperEndPoint()
	require.True(t, ierrors.Is(err, ErrInvalidState))

	atMost := AtMost(0)
	require.Equal(t, "(-∞..0]", atMost.String())
	require.False(t, atMost.HasLowerBound())
	require.True(t, atMost.HasUpperBound())
	require.Equal(t, BoundTypeClosed, atMost.UpperBoundType())
	require.True(t, atMost.Contains(0))
	require.False(t, atMost.Contains(1))

	_, err = atMost.LowerEndPoint()
	require.True(t, ierrors.Is(err, ErrInvalidState))

	greaterThan := GreaterThan(0)
	require.Equal(t, "(0..∞)", greaterThan.String())
	require.Equal(t, BoundTypeOpen, greaterThan.LowerBoundType())
	require.False(t, greaterThan.Contains(0))
	require.True(t, greaterThan.Contains(1))

	lessThan := LessThan(0)
	require.Equal(t, "(-∞..0)", lessThan.String())
	require.Equal(t, BoundTypeOpen, lessThan.UpperBoundType())
	require.False(t, lessThan.Contains(0))
	require.True(t, lessThan.Contains(-1))
}

func TestValueRange_Empty(t *testing.T) {
	openClosed := lo.PanicOnErr(OpenClosed(0, 0))
	require.True(t, openClosed.Empty())
	require.False(t, openClosed.Contains(0))
	require.Equal(t, "(0..0]", openClosed.String())

	closedOpen := lo.PanicOnErr(ClosedOpen(5, 5))
	require.True(t, closedOpen.Empty())
	require.False(t, closedOpen.Contains(5))

	singleton := Singleton(5)
	require.False(t, singleton.Empty())
	require.True(t, singleton.Contains(5))
	require.False(t, singleton.Contains(4))
	require.False(t, singleton.Contains(6))
	require.Equal(t, "[5..5]", singleton.String())

	// discrete ranges without members are not empty
	require.False(t, lo.PanicOnErr(Open(3, 4)).Empty())
}

func TestValueRange_InvalidBounds(t *testing.T) {
	_, err := Closed(5, 1)
	require.True(t, ierrors.Is(err, ErrConstructionFailed))
	require.Contains(t, err.Error(), belowValueCut(5).String())
	require.Contains(t, err.Error(), aboveValueCut(1).String())

	_, err = Open(3, 3)
	require.True(t, ierrors.Is(err, ErrConstructionFailed))
	require.Contains(t, err.Error(), "kind: aboveValue\n  endpoint: 3")

	_, err = ClosedOpen(2, 1)
	require.True(t, ierrors.Is(err, ErrConstructionFailed))

	_, err = OpenClosed(2, 1)
	require.True(t, ierrors.Is(err, ErrConstructionFailed))

	_, err = newValueRange(aboveAllCut[int](), aboveAllCut[int](), lo.Comparator[int])
	require.True(t, ierrors.Is(err, ErrConstructionFailed))

	_, err = newValueRange(belowAllCut[int](), belowAllCut[int](), lo.Comparator[int])
	require.True(t, ierrors.Is(err, ErrConstructionFailed))

	_, err = newValueRange(aboveValueCut(1), belowAllCut[int](), lo.Comparator[int])
	require.True(t, ierrors.Is(err, ErrConstructionFailed))
}

func TestValueRange_Contains(t *testing.T) {
	valueRange := lo.PanicOnErr(ClosedOpen(2, 4))

	require.False(t, valueRange.Contains(1))
	require.True(t, valueRange.Contains(2))
	require.True(t, valueRange.Contains(3))
	require.False(t, valueRange.Contains(4))

	require.True(t, valueRange.ContainsAll([]int{2, 3}))
	require.False(t, valueRange.ContainsAll([]int{2, 3, 4}))
	require.True(t, valueRange.ContainsAll(nil))
	require.True(t, valueRange.ContainsAll([]int{}))
}

func TestValueRange_Compare(t *testing.T) {
	valueRange := lo.PanicOnErr(OpenClosed(2, 4))

	require.Equal(t, 1, valueRange.Compare(1))
	require.Equal(t, 1, valueRange.Compare(2))
	require.Equal(t, 0, valueRange.Compare(3))
	require.Equal(t, 0, valueRange.Compare(4))
	require.Equal(t, -1, valueRange.Compare(5))
}

func TestValueRange_Encloses(t *testing.T) {
	tests := []struct {
		name     string
		outer    *ValueRange[int]
		inner    *ValueRange[int]
		expected bool
	}{
		{"same", lo.PanicOnErr(Closed(3, 6)), lo.PanicOnErr(Closed(3, 6)), true},
		{"empty inside", lo.PanicOnErr(Closed(3, 6)), lo.PanicOnErr(ClosedOpen(4, 4)), true},
		{"empty outside", lo.PanicOnErr(Closed(3, 6)), lo.PanicOnErr(OpenClosed(1, 1)), false},
		{"open does not enclose closed", lo.PanicOnErr(OpenClosed(3, 6)), lo.PanicOnErr(Closed(3, 6)), false},
		{"closed encloses open", lo.PanicOnErr(Closed(3, 6)), lo.PanicOnErr(Open(3, 6)), true},
		{"partial overlap", lo.PanicOnErr(Closed(3, 6)), lo.PanicOnErr(Closed(4, 7)), false},
		{"all encloses everything", All[int](), AtMost(6), true},
		{"bounded does not enclose unbounded", lo.PanicOnErr(Closed(3, 6)), AtLeast(4), false},
		{"singleton", lo.PanicOnErr(Closed(3, 6)), Singleton(6), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.outer.Encloses(test.inner))
		})
	}
}

func TestValueRange_IsConnected(t *testing.T) {
	require.True(t, lo.PanicOnErr(ClosedOpen(2, 4)).IsConnected(lo.PanicOnErr(ClosedOpen(4, 6))))
	require.False(t, lo.PanicOnErr(ClosedOpen(2, 4)).IsConnected(lo.PanicOnErr(ClosedOpen(5, 7))))
	require.True(t, lo.PanicOnErr(ClosedOpen(2, 4)).IsConnected(lo.PanicOnErr(ClosedOpen(3, 5))))
	require.False(t, lo.PanicOnErr(ClosedOpen(2, 4)).IsConnected(lo.PanicOnErr(Open(4, 6))))
	require.True(t, lo.PanicOnErr(Closed(2, 4)).IsConnected(lo.PanicOnErr(Open(4, 6))))
	require.True(t, AtMost(0).IsConnected(AtLeast(0)))
	require.False(t, LessThan(0).IsConnected(GreaterThan(0)))
}

func TestValueRange_Intersection(t *testing.T) {
	intersection, err := lo.PanicOnErr(Closed(1, 5)).Intersection(lo.PanicOnErr(Open(3, 7)))
	require.NoError(t, err)
	requireEqualRange(t, lo.PanicOnErr(OpenClosed(3, 5)), intersection)

	intersection, err = lo.PanicOnErr(Closed(1, 3)).And(lo.PanicOnErr(Closed(2, 5)))
	require.NoError(t, err)
	requireEqualRange(t, lo.PanicOnErr(Closed(2, 3)), intersection)

	intersection, err = lo.PanicOnErr(ClosedOpen(2, 4)).Intersection(lo.PanicOnErr(ClosedOpen(4, 6)))
	require.NoError(t, err)
	require.True(t, intersection.Empty())
	requireEqualRange(t, lo.PanicOnErr(ClosedOpen(4, 4)), intersection)

	_, err = lo.PanicOnErr(Closed(1, 5)).Intersection(lo.PanicOnErr(Closed(6, 7)))
	require.True(t, ierrors.Is(err, ErrInvalidArgument))

	_, err = LessThan(0).And(GreaterThan(0))
	require.True(t, ierrors.Is(err, ErrInvalidArgument))
}

func TestValueRange_IntersectionReusesOperands(t *testing.T) {
	outer := lo.PanicOnErr(Closed(1, 10))
	inner := lo.PanicOnErr(Open(3, 5))

	intersection, err := outer.Intersection(inner)
	require.NoError(t, err)
	require.Same(t, inner, intersection)

	intersection, err = inner.Intersection(outer)
	require.NoError(t, err)
	require.Same(t, inner, intersection)

	intersection, err = outer.Intersection(outer)
	require.NoError(t, err)
	require.Same(t, outer, intersection)
}

func TestValueRange_Span(t *testing.T) {
	requireEqualRange(t, lo.PanicOnErr(ClosedOpen(1, 7)), lo.PanicOnErr(Closed(1, 3)).Span(lo.PanicOnErr(Open(5, 7))))
	requireEqualRange(t, lo.PanicOnErr(Closed(1, 5)), lo.PanicOnErr(Closed(1, 3)).Or(lo.PanicOnErr(Closed(2, 5))))
	requireEqualRange(t, All[int](), LessThan(0).Span(GreaterThan(0)))
	requireEqualRange(t, AtLeast(1), lo.PanicOnErr(Closed(1, 3)).Span(GreaterThan(2)))

	outer := lo.PanicOnErr(Closed(1, 10))
	inner := lo.PanicOnErr(Open(3, 5))
	require.Same(t, outer, outer.Span(inner))
	require.Same(t, outer, inner.Span(outer))
	require.Same(t, inner, inner.Span(inner))
}

func TestValueRange_Equal(t *testing.T) {
	require.True(t, lo.PanicOnErr(Closed(1, 5)).Equal(lo.PanicOnErr(Closed(1, 5))))
	require.False(t, lo.PanicOnErr(Closed(1, 5)).Equal(lo.PanicOnErr(ClosedOpen(1, 5))))
	require.True(t, lo.PanicOnErr(Closed(1, 5)).NotEqual(lo.PanicOnErr(Closed(1, 6))))
	require.True(t, All[int]().Equal(All[int]()))
	require.False(t, All[int]().Equal(nil))

	// empty ranges are only equal if they sit at the same position
	require.True(t, lo.PanicOnErr(ClosedOpen(3, 3)).Equal(lo.PanicOnErr(ClosedOpen(3, 3))))
	require.False(t, lo.PanicOnErr(ClosedOpen(3, 3)).Equal(lo.PanicOnErr(OpenClosed(3, 3))))
}

func TestValueRange_String(t *testing.T) {
	require.Equal(t, "[1.5..2.25)", lo.PanicOnErr(ClosedOpen(1.5, 2.25)).String())
	require.Equal(t, "[a..z]", lo.PanicOnErr(Closed("a", "z")).String())
	require.Equal(t, "(-∞..∞)", All[string]().String())

	text, err := lo.PanicOnErr(Open(1, 2)).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "(1..2)", string(text))

	var nilRange *ValueRange[int]
	require.Equal(t, "<nil>", nilRange.String())
}

func TestValueRange_Time(t *testing.T) {
	factory := ComparableFactory[time.Time]()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	day := lo.PanicOnErr(factory.ClosedOpen(start, end))
	require.True(t, day.Contains(start))
	require.True(t, day.Contains(start.Add(time.Hour)))
	require.False(t, day.Contains(end))

	// the same instant in another location is the same value
	require.True(t, day.Contains(start.In(time.FixedZone("UTC+2", 2*60*60))))

	intersection, err := day.Intersection(factory.AtLeast(start.Add(12 * time.Hour)))
	require.NoError(t, err)
	requireEqualRange(t, lo.PanicOnErr(factory.ClosedOpen(start.Add(12*time.Hour), end)), intersection)
}

func TestValueRange_ConcurrentReads(t *testing.T) {
	valueRange := lo.PanicOnErr(Closed(0, 100))
	other := lo.PanicOnErr(Open(50, 150))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(value int) {
			defer wg.Done()

			assert.Equal(t, value <= 100, valueRange.Contains(value))
			assert.True(t, valueRange.IsConnected(other))
			assert.Equal(t, "[0..100]", valueRange.String())
		}(i * 10)
	}
	wg.Wait()
}

func TestValueRange_Properties(t *testing.T) {
	ranges := rangeGrid(-2, -1, 0, 1, 2)

	t.Run("closed and open endpoints", func(t *testing.T) {
		for lower := -2; lower <= 2; lower++ {
			for upper := lower; upper <= 2; upper++ {
				closed := lo.PanicOnErr(Closed(lower, upper))
				require.True(t, closed.Contains(lower))
				require.True(t, closed.Contains(upper))

				if lower < upper {
					open := lo.PanicOnErr(Open(lower, upper))
					require.False(t, open.Contains(lower))
					require.False(t, open.Contains(upper))
				}
			}
		}
	})

	t.Run("idempotence", func(t *testing.T) {
		for _, a := range ranges {
			intersection, err := a.Intersection(a)
			require.NoError(t, err)
			requireEqualRange(t, a, intersection)
			requireEqualRange(t, a, a.Span(a))
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		for _, a := range ranges {
			for _, b := range ranges {
				require.Equal(t, a.IsConnected(b), b.IsConnected(a), "%s / %s", a, b)
				requireEqualRange(t, a.Span(b), b.Span(a))

				if a.IsConnected(b) {
					intersectionAB := lo.PanicOnErr(a.Intersection(b))
					intersectionBA := lo.PanicOnErr(b.Intersection(a))
					requireEqualRange(t, intersectionAB, intersectionBA)
					require.True(t, a.Encloses(intersectionAB))
					require.True(t, b.Encloses(intersectionAB))
				}

				span := a.Span(b)
				require.True(t, span.Encloses(a))
				require.True(t, span.Encloses(b))
			}
		}
	})

	t.Run("transitivity", func(t *testing.T) {
		for _, a := range ranges {
			for _, b := range ranges {
				if !a.Encloses(b) {
					continue
				}

				for _, c := range ranges {
					if b.Encloses(c) {
						require.True(t, a.Encloses(c), "%s / %s / %s", a, b, c)
					}
				}
			}
		}
	})

	t.Run("membership", func(t *testing.T) {
		for _, a := range ranges {
			for value := -3; value <= 3; value++ {
				require.Equal(t, a.Contains(value), a.Compare(value) == 0)
				require.Equal(t, a.Contains(value), a.Encloses(Singleton(value)), "%s / %d", a, value)
			}
		}
	})
}

// rangeGrid creates all ValueRanges that can be built from the given values.
func rangeGrid[T constraints.Ordered](values ...T) []*ValueRange[T] {
	factory := OrderedFactory[T]()

	ranges := []*ValueRange[T]{factory.All()}
	for _, value := range values {
		ranges = append(ranges, factory.AtLeast(value), factory.AtMost(value), factory.GreaterThan(value), factory.LessThan(value), factory.Singleton(value))
	}

	constructors := []func(lower, upper T) (*ValueRange[T], error){factory.Closed, factory.Open, factory.OpenClosed, factory.ClosedOpen}
	for _, lower := range values {
		for _, upper := range values {
			for _, constructor := range constructors {
				if valueRange, err := constructor(lower, upper); err == nil {
					ranges = append(ranges, valueRange)
				}
			}
		}
	}

	return ranges
}

// requireEqualRange compares ValueRanges by their bounds (require.Equal can not compare the Comparator).
func requireEqualRange[T any](t *testing.T, expected, actual *ValueRange[T]) {
	t.Helper()

	require.Truef(t, expected.Equal(actual), "expected %s but got %s", expected, actual)
}
