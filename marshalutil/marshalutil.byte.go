package marshalutil

// ByteSize contains the amount of bytes of a marshaled byte value.
const ByteSize = 1

// WriteByte writes a single byte to the internal buffer.
func (util *MarshalUtil) WriteByte(value byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(ByteSize)

	util.bytes[util.writeOffset] = value

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadByte reads a single byte from the internal buffer.
func (util *MarshalUtil) ReadByte() (byte, error) {
	readEndOffset, err := util.checkReadCapacity(ByteSize)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset], nil
}
