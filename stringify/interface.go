package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface returns a human-readable version of the given value. Scalars are rendered without quoting, Stringers use
// their String method and everything else falls back to the default format of the fmt package.
func Interface(value any) string {
	switch typeCastedValue := value.(type) {
	case nil:
		return "<nil>"
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case string:
		return typeCastedValue
	case []byte:
		return fmt.Sprintf("%X", typeCastedValue)
	case int:
		return strconv.Itoa(typeCastedValue)
	case int64:
		return strconv.FormatInt(typeCastedValue, 10)
	case uint64:
		return strconv.FormatUint(typeCastedValue, 10)
	case float32:
		return Float32(typeCastedValue)
	case float64:
		return Float64(typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	}

	if reflectValue := reflect.ValueOf(value); reflectValue.Kind() == reflect.Ptr && !reflectValue.IsNil() {
		return Interface(reflectValue.Elem().Interface())
	}

	return fmt.Sprint(value)
}
