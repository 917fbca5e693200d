package valuerange

import (
	"time"

	"github.com/iotaledger/ranges/bitmask"
	"github.com/iotaledger/ranges/ierrors"
	"github.com/iotaledger/ranges/lo"
	"github.com/iotaledger/ranges/marshalutil"
)

const (
	// lowerBoundBit is set in the header byte if the lower endpoint follows.
	lowerBoundBit uint = 0

	// upperBoundBit is set in the header byte if the upper endpoint follows.
	upperBoundBit uint = 1

	// headerWidth is the number of bits of the header byte that carry information.
	headerWidth uint = 2
)

// ValueCodec writes and reads the endpoints of a ValueRange.
type ValueCodec[T any] interface {
	// WriteValue appends the marshaled value to the MarshalUtil.
	WriteValue(marshalUtil *marshalutil.MarshalUtil, value T)

	// ReadValue reads a value from the MarshalUtil.
	ReadValue(marshalUtil *marshalutil.MarshalUtil) (T, error)
}

// Bytes returns a marshaled version of the ValueRange.
func (v *ValueRange[T]) Bytes(codec ValueCodec[T]) []byte {
	var header bitmask.BitMask
	header = header.ModifyBit(lowerBoundBit, v.HasLowerBound()).ModifyBit(upperBoundBit, v.HasUpperBound())

	marshalUtil := marshalutil.New()
	marshalUtil.WriteByte(byte(header))
	if v.HasLowerBound() {
		codec.WriteValue(marshalUtil, v.lowerCut.endpoint)
		marshalUtil.Write(v.LowerBoundType())
	}
	if v.HasUpperBound() {
		codec.WriteValue(marshalUtil, v.upperCut.endpoint)
		marshalUtil.Write(v.UpperBoundType())
	}

	return marshalUtil.Bytes()
}

// FromBytes unmarshals a ValueRange from a sequence of bytes.
func (f *Factory[T]) FromBytes(valueRangeBytes []byte, codec ValueCodec[T]) (valueRange *ValueRange[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(valueRangeBytes)
	if valueRange, err = f.FromMarshalUtil(marshalUtil, codec); err != nil {
		err = ierrors.Wrap(err, "failed to parse ValueRange from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a ValueRange using a MarshalUtil (for easier unmarshalling).
func (f *Factory[T]) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, codec ValueCodec[T]) (*ValueRange[T], error) {
	headerByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, ierrors.WithMessagef(ErrParseBytesFailed, "failed to read endpoint exists mask: %w", err)
	}

	header := bitmask.BitMask(headerByte)
	if header.HasUnknownBits(headerWidth) {
		return nil, ierrors.WithMessagef(ErrParseBytesFailed, "unsupported endpoint exists mask (%X)", headerByte)
	}

	lowerCut, upperCut := belowAllCut[T](), aboveAllCut[T]()
	if header.HasBit(lowerBoundBit) {
		value, boundType, readErr := readEndPoint(marshalUtil, codec)
		if readErr != nil {
			return nil, ierrors.Wrap(readErr, "failed to parse lower endpoint")
		}

		lowerCut = lo.Cond(boundType == BoundTypeClosed, belowValueCut(value), aboveValueCut(value))
	}
	if header.HasBit(upperBoundBit) {
		value, boundType, readErr := readEndPoint(marshalUtil, codec)
		if readErr != nil {
			return nil, ierrors.Wrap(readErr, "failed to parse upper endpoint")
		}

		upperCut = lo.Cond(boundType == BoundTypeClosed, aboveValueCut(value), belowValueCut(value))
	}

	return newValueRange(lowerCut, upperCut, f.compare)
}

func readEndPoint[T any](marshalUtil *marshalutil.MarshalUtil, codec ValueCodec[T]) (value T, boundType BoundType, err error) {
	if value, err = codec.ReadValue(marshalUtil); err != nil {
		return value, boundType, ierrors.WithMessagef(ErrParseBytesFailed, "failed to read value: %w", err)
	}

	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		return value, boundType, ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")
	}

	return value, boundType, nil
}

// region codecs ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Codec marshals int64 endpoints as 8 bytes.
type Int64Codec struct{}

func (Int64Codec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value int64) {
	marshalUtil.WriteInt64(value)
}

func (Int64Codec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (int64, error) {
	return marshalUtil.ReadInt64()
}

// Uint64Codec marshals uint64 endpoints as 8 bytes.
type Uint64Codec struct{}

func (Uint64Codec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value uint64) {
	marshalUtil.WriteUint64(value)
}

func (Uint64Codec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (uint64, error) {
	return marshalUtil.ReadUint64()
}

// Float64Codec marshals float64 endpoints as their 8 byte IEEE 754 representation.
type Float64Codec struct{}

func (Float64Codec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value float64) {
	marshalUtil.WriteFloat64(value)
}

func (Float64Codec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (float64, error) {
	return marshalUtil.ReadFloat64()
}

// StringCodec marshals string endpoints with a uint32 length prefix.
type StringCodec struct{}

func (StringCodec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value string) {
	marshalUtil.WriteUint32(uint32(len(value)))
	marshalUtil.WriteBytes([]byte(value))
}

func (StringCodec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (string, error) {
	length, err := marshalUtil.ReadUint32()
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string length")
	}

	stringBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string")
	}

	return string(stringBytes), nil
}

// TimeCodec marshals time.Time endpoints with nanosecond precision (the location is not preserved). The zero Time
// and the Unix epoch are kept apart.
type TimeCodec struct{}

func (TimeCodec) WriteValue(marshalUtil *marshalutil.MarshalUtil, value time.Time) {
	marshalUtil.WriteTime(value)
}

func (TimeCodec) ReadValue(marshalUtil *marshalutil.MarshalUtil) (time.Time, error) {
	return marshalUtil.ReadTime()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
