package stringify

import (
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the amount of spaces that nested fields are indented with.
const IndentationSize = 2

// Struct renders a struct-like debug representation with one indented line per field.
func Struct(name string, fields ...*StructField) string {
	var builder strings.Builder
	builder.WriteString(name + " {\n")
	for _, field := range fields {
		builder.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize)))
	}
	builder.WriteString("}")

	return builder.String()
}
