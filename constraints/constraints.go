package constraints

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Ordered is a constraint that permits any ordered type: any type that supports the operators < <= >= >.
//
// Note that NaN breaks the total order of the float types, ValueRanges over floats assume NaN-free input.
type Ordered interface {
	Integer | Float | ~string
}

// Comparable is a constraint for types that define their own three-way comparison (i.e. time.Time). Compare returns
// -1 if the receiver is smaller, 1 if it is bigger and 0 if both are equal.
type Comparable[T any] interface {
	Compare(other T) int
}
