package marshalutil

import (
	"time"
)

// TimeSize contains the amount of bytes of a marshaled Time value.
const TimeSize = ByteSize + Int64Size

// WriteTime writes a marshaled Time value (nanosecond precision, location is not preserved) to the internal buffer.
// A leading byte tells the zero Time apart from the Unix epoch.
func (util *MarshalUtil) WriteTime(timeToWrite time.Time) *MarshalUtil {
	if timeToWrite.IsZero() {
		return util.WriteByte(0).WriteInt64(0)
	}

	return util.WriteByte(1).WriteInt64(timeToWrite.UnixNano())
}

// ReadTime reads a Time value from the internal buffer.
func (util *MarshalUtil) ReadTime() (time.Time, error) {
	readStartOffset := util.ReadOffset()

	isSet, err := util.ReadByte()
	if err != nil {
		return time.Time{}, err
	}

	nanoSeconds, err := util.ReadInt64()
	if err != nil {
		util.ReadSeek(readStartOffset)

		return time.Time{}, err
	}

	if isSet == 0 {
		return time.Time{}, nil
	}

	return time.Unix(0, nanoSeconds), nil
}
