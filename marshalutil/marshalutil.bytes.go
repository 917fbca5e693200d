package marshalutil

// WriteBytes appends the given bytes to the internal buffer.
func (util *MarshalUtil) WriteBytes(bytes []byte) *MarshalUtil {
	if len(bytes) == 0 {
		return util
	}

	writeEndOffset := util.expandWriteCapacity(len(bytes))

	copy(util.bytes[util.writeOffset:writeEndOffset], bytes)

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBytes reads the given amount of bytes from the internal buffer. The result is a copy.
func (util *MarshalUtil) ReadBytes(length int) ([]byte, error) {
	readEndOffset, err := util.checkReadCapacity(length)
	if err != nil {
		return nil, err
	}

	defer util.ReadSeek(readEndOffset)

	result := make([]byte, length)
	copy(result, util.bytes[util.readOffset:readEndOffset])

	return result, nil
}

// ReadRemainingBytes reads all bytes that were not read so far.
func (util *MarshalUtil) ReadRemainingBytes() []byte {
	defer util.ReadSeek(util.size)

	return util.bytes[util.readOffset:util.size]
}
