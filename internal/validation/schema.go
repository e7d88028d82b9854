package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the declared type of an input field.
type Kind int

const (
	Integer Kind = iota
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "an integer"
	case Number:
		return "a number"
	default:
		return "a string"
	}
}

// Rule is the declarative constraint set for one input field.
type Rule struct {
	Field     string
	Kind      Kind
	Required  bool
	AllowNull bool     // an explicit JSON null is accepted
	Enum      []string // case-insensitive allowed values, normalized to the listed casing
	Default   any      // applied when the field is absent
	Min       *float64 // inclusive numeric lower bound
	// AtLeastField names another numeric field this one must be >= to.
	AtLeastField string
}

// Schema is the ordered rule set for one input source. Every rule is
// evaluated on each pass; violations are collected, not short-circuited.
type Schema []Rule

// FieldError is a single violated rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found in one validation pass.
type ValidationError struct {
	Fields []FieldError
}

// Error joins every violation's message, so a caller sees all problems in
// one round trip.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}

// First returns only the first violation's message.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Message
}

// ValidateValues checks a string-valued source (query or path parameters).
// Numeric-looking strings are coerced to their declared kind.
func (s Schema) ValidateValues(values map[string][]string) (map[string]any, error) {
	raw := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	return s.validate(raw)
}

// ValidateJSON checks a decoded JSON object (request bodies).
func (s Schema) ValidateJSON(body map[string]any) (map[string]any, error) {
	return s.validate(body)
}

func (s Schema) validate(raw map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(s))
	var violations []FieldError

	fail := func(field, format string, args ...any) {
		violations = append(violations, FieldError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, r := range s {
		value, present := raw[r.Field]
		if !present {
			if r.Required {
				fail(r.Field, "%q is required", r.Field)
			} else if r.Default != nil {
				normalized[r.Field] = r.Default
			}
			continue
		}

		if value == nil {
			if r.AllowNull {
				normalized[r.Field] = nil
			} else {
				fail(r.Field, "%q must not be null", r.Field)
			}
			continue
		}

		coerced, ok := coerce(r.Kind, value)
		if !ok {
			fail(r.Field, "%q must be %s", r.Field, r.Kind)
			continue
		}

		if len(r.Enum) > 0 {
			canonical, ok := matchEnum(r.Enum, coerced)
			if !ok {
				fail(r.Field, "%q must be one of [%s]", r.Field, strings.Join(r.Enum, ", "))
				continue
			}
			coerced = canonical
		}

		if r.Min != nil {
			if v, ok := numeric(coerced); ok && v < *r.Min {
				fail(r.Field, "%q must be greater than or equal to %v", r.Field, *r.Min)
				continue
			}
		}

		normalized[r.Field] = coerced
	}

	// Cross-field constraints run after every field is normalized.
	for _, r := range s {
		if r.AtLeastField == "" {
			continue
		}
		value, ok1 := numeric(normalized[r.Field])
		floor, ok2 := numeric(normalized[r.AtLeastField])
		if ok1 && ok2 && value < floor {
			fail(r.Field, "%q must be greater than or equal to %q", r.Field, r.AtLeastField)
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Fields: violations}
	}
	return normalized, nil
}

// coerce converts a raw value to its declared kind. Integers come back as
// int, numbers as float64, text as string.
func coerce(kind Kind, value any) (any, bool) {
	switch kind {
	case Integer:
		switch v := value.(type) {
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || math.Trunc(f) != f {
				return nil, false
			}
			return int(f), true
		case float64:
			if math.Trunc(v) != v {
				return nil, false
			}
			return int(v), true
		case int:
			return v, true
		}
	case Number:
		switch v := value.(type) {
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, false
			}
			return f, true
		case float64:
			return v, true
		case int:
			return float64(v), true
		}
	case Text:
		if v, ok := value.(string); ok {
			return v, true
		}
	}
	return nil, false
}

// matchEnum compares case-insensitively and returns the canonical casing.
func matchEnum(enum []string, value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	for _, allowed := range enum {
		if strings.EqualFold(allowed, s) {
			return allowed, true
		}
	}
	return "", false
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
