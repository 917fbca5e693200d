package valuerange

import (
	"strings"

	"github.com/iotaledger/ranges/constraints"
	"github.com/iotaledger/ranges/ierrors"
)

// ValueParser turns the textual representation of an endpoint into a value.
type ValueParser[T any] func(text string) (T, error)

// Parse reads a ValueRange of an ordered type from its notation (see ValueRange.String).
func Parse[T constraints.Ordered](notation string, parseValue ValueParser[T]) (*ValueRange[T], error) {
	return OrderedFactory[T]().Parse(notation, parseValue)
}

// Parse reads a ValueRange from its notation, i.e. "[1..5)", "(-∞..0]" or "(-INF..+INF)".
//
// Whitespace around the notation and around the endpoints is ignored and the endpoints are separated at the first "..".
// Infinity is only recognized behind an open bracket, every other endpoint text is handed to the ValueParser.
// Malformed input returns ErrParseNotationFailed while inverted bounds return ErrConstructionFailed.
func (f *Factory[T]) Parse(notation string, parseValue ValueParser[T]) (*ValueRange[T], error) {
	trimmedNotation := strings.TrimSpace(notation)
	if len(trimmedNotation) < 2 {
		return nil, ierrors.WithMessagef(ErrParseNotationFailed, "notation '%s' is too short", notation)
	}

	lowerText, upperText, found := strings.Cut(trimmedNotation[1:len(trimmedNotation)-1], "..")
	if !found {
		return nil, ierrors.WithMessagef(ErrParseNotationFailed, "notation '%s' has no '..' separator", notation)
	}

	lowerCut, err := parseLowerCut(trimmedNotation[0], strings.TrimSpace(lowerText), parseValue)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to parse lower bound of '%s'", notation)
	}

	upperCut, err := parseUpperCut(trimmedNotation[len(trimmedNotation)-1], strings.TrimSpace(upperText), parseValue)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to parse upper bound of '%s'", notation)
	}

	return newValueRange(lowerCut, upperCut, f.compare)
}

func parseLowerCut[T any](bracket byte, text string, parseValue ValueParser[T]) (cut[T], error) {
	switch {
	case bracket != '[' && bracket != '(':
		return cut[T]{}, ierrors.WithMessagef(ErrParseNotationFailed, "unexpected opening bracket '%c'", bracket)
	case bracket == '(' && isNegativeInfinity(text):
		return belowAllCut[T](), nil
	}

	value, err := parseEndpoint(text, parseValue)
	if err != nil {
		return cut[T]{}, err
	}

	if bracket == '[' {
		return belowValueCut(value), nil
	}

	return aboveValueCut(value), nil
}

func parseUpperCut[T any](bracket byte, text string, parseValue ValueParser[T]) (cut[T], error) {
	switch {
	case bracket != ']' && bracket != ')':
		return cut[T]{}, ierrors.WithMessagef(ErrParseNotationFailed, "unexpected closing bracket '%c'", bracket)
	case bracket == ')' && isPositiveInfinity(text):
		return aboveAllCut[T](), nil
	}

	value, err := parseEndpoint(text, parseValue)
	if err != nil {
		return cut[T]{}, err
	}

	if bracket == ']' {
		return aboveValueCut(value), nil
	}

	return belowValueCut(value), nil
}

func parseEndpoint[T any](text string, parseValue ValueParser[T]) (value T, err error) {
	if text == "" {
		return value, ierrors.WithMessage(ErrParseNotationFailed, "missing endpoint")
	}

	if value, err = parseValue(text); err != nil {
		return value, ierrors.WithMessagef(ErrParseNotationFailed, "invalid endpoint '%s': %w", text, err)
	}

	return value, nil
}

// isNegativeInfinity is case-sensitive, so the "-Inf" of a float endpoint is left to the ValueParser.
func isNegativeInfinity(text string) bool {
	return text == "-∞" || text == "-INF"
}

func isPositiveInfinity(text string) bool {
	return text == "∞" || text == "+∞" || text == "INF" || text == "+INF"
}
