package valuerange

import "github.com/iotaledger/ranges/ierrors"

var (
	// ErrConstructionFailed is returned if the bounds of a ValueRange are inverted or if -∞ / +∞ is used on the wrong
	// side.
	ErrConstructionFailed = ierrors.New("failed to construct ValueRange")

	// ErrInvalidState is returned if the endpoint of an unbounded side of a ValueRange is read.
	ErrInvalidState = ierrors.New("invalid state")

	// ErrInvalidArgument is returned if an operation is called with arguments it is not defined for (i.e. the
	// intersection of ValueRanges that are not connected).
	ErrInvalidArgument = ierrors.New("invalid argument")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")

	// ErrParseNotationFailed is returned if a ValueRange can not be parsed from its textual notation.
	ErrParseNotationFailed = ierrors.New("failed to parse ValueRange notation")
)
