package stringify

// StructField is a named value that is rendered as part of a Struct.
type StructField struct {
	name  string
	value any
}

// NewStructField creates a new StructField.
func NewStructField(name string, value any) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (s *StructField) String() string {
	return s.name + ": " + Interface(s.value)
}
