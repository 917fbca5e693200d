package marshalutil

import (
	"fmt"

	"github.com/iotaledger/ranges/ierrors"
)

// ErrInsufficientBytes is returned if a read exceeds the end of the underlying buffer.
var ErrInsufficientBytes = ierrors.New("insufficient bytes")

// defaultCapacity is the initial capacity of a MarshalUtil that is created for writing.
const defaultCapacity = 64

// MarshalUtil is a buffer with independent read and write offsets that is used to marshal and unmarshal objects.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a new MarshalUtil. Without arguments it creates an empty buffer for writing, an int argument
// preallocates a zeroed buffer of that size and a []byte argument wraps the given bytes for reading.
func New(args ...any) *MarshalUtil {
	switch argsCount := len(args); argsCount {
	case 0:
		return &MarshalUtil{
			bytes: make([]byte, 0, defaultCapacity),
		}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &MarshalUtil{
				bytes: make([]byte, param),
				size:  param,
			}
		case []byte:
			return &MarshalUtil{
				bytes: param,
				size:  len(param),
			}
		default:
			panic(fmt.Sprintf("illegal argument type %T in marshalutil.New(...)", param))
		}
	default:
		panic(fmt.Sprintf("illegal argument count %d in marshalutil.New(...)", argsCount))
	}
}

// ReadOffset returns the current read offset.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// WriteOffset returns the current write offset.
func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

// ReadSeek moves the read offset. Negative offsets are relative to the current position.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// WriteSeek moves the write offset. Negative offsets are relative to the current position.
func (util *MarshalUtil) WriteSeek(offset int) {
	if offset < 0 {
		util.writeOffset += offset
	} else {
		util.writeOffset = offset
	}
}

// Bytes returns the written bytes. If clone is set, the result does not share memory with the buffer.
func (util *MarshalUtil) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		cloned := make([]byte, util.size)
		copy(cloned, util.bytes[:util.size])

		return cloned
	}

	return util.bytes[:util.size]
}

// Write marshals the given object by writing its Bytes into the underlying buffer.
func (util *MarshalUtil) Write(object SimpleBinaryMarshaler) *MarshalUtil {
	return util.WriteBytes(object.Bytes())
}

// SimpleBinaryMarshaler represents objects that have a Bytes method for marshaling. In contrast to go's built-in
// encoding.BinaryMarshaler this interface expects no errors to be returned.
type SimpleBinaryMarshaler interface {
	// Bytes returns a marshaled version of the object.
	Bytes() []byte
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	if readEndOffset = util.readOffset + length; length < 0 || readEndOffset > util.size {
		return 0, ierrors.WithMessagef(ErrInsufficientBytes, "tried to read %d bytes from %d bytes input", readEndOffset, util.size)
	}

	return readEndOffset, nil
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	if writeEndOffset = util.writeOffset + length; writeEndOffset > util.size {
		util.bytes = append(util.bytes[:util.size], make([]byte, writeEndOffset-util.size)...)
		util.size = writeEndOffset
	}

	return writeEndOffset
}
