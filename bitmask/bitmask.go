package bitmask

// BitMask is a byte sized set of flags that are addressed by their position (0-7).
type BitMask byte

// SetBit sets the bit at the given position.
func (bitmask BitMask) SetBit(pos uint) BitMask {
	return bitmask | 1<<pos
}

// ClearBit clears the bit at the given position.
func (bitmask BitMask) ClearBit(pos uint) BitMask {
	return bitmask &^ (1 << pos)
}

// ModifyBit sets or clears the bit at the given position, given the supplied state.
func (bitmask BitMask) ModifyBit(pos uint, state bool) BitMask {
	if state {
		return bitmask.SetBit(pos)
	}

	return bitmask.ClearBit(pos)
}

// HasBit checks whether the bit at the given position is set.
func (bitmask BitMask) HasBit(pos uint) bool {
	return bitmask&(1<<pos) != 0
}

// HasUnknownBits checks whether a bit at a position of at least the given width is set.
func (bitmask BitMask) HasUnknownBits(width uint) bool {
	return bitmask>>width != 0
}
