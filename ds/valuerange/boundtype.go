package valuerange

import (
	"fmt"

	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/marshalutil"
)

// BoundType indicates whether an endpoint of some ValueRange is contained in the ValueRange itself ("closed") or not
// ("open").
//
// The unbounded sides of a ValueRange report a BoundType as well: -∞ is a closed lower bound and +∞ is a closed upper
// bound, while the endpoint accessors fail for these sides.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the endpoint value is not considered part of the ValueRange ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the endpoint value is considered part of the ValueRange ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// BoundTypeFromBytes unmarshals a BoundType from a sequence of bytes.
func BoundTypeFromBytes(boundTypeBytes []byte) (boundType BoundType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundTypeBytes)
	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.WithMessagef(ErrParseBytesFailed, "failed to read BoundType: %w", err)

		return
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeClosed {
		err = ierrors.WithMessagef(ErrParseBytesFailed, "unsupported BoundType (%X)", uint8(boundType))

		// the invalid byte is not consumed
		marshalUtil.ReadSeek(-1)

		return
	}

	return
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
