package shape

// Kind identifies which variant of a Shape the coercer should handle.
// The zero value KindInvalid selects the generic extract-and-deserialize
// path.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindSequence
	KindRecord
)

// String returns the kind name used in error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Format refinements for string-kind shapes. They do not change how a value
// is coerced; the describer uses them to pick a friendlier type name and a
// plausible example value.
const (
	FormatDateTime = "date-time"
	FormatGUID     = "uuid"
)

// Constraints carries optional per-field validation hints. They are
// advisory: the describer renders them for the model, the coercer does not
// enforce them.
type Constraints struct {
	MinLength *int
	MaxLength *int
	Minimum   *float64
	Maximum   *float64
	Pattern   string
}

// Empty reports whether no constraint is set.
func (c Constraints) Empty() bool {
	return c.MinLength == nil && c.MaxLength == nil &&
		c.Minimum == nil && c.Maximum == nil && c.Pattern == ""
}

// Field describes one named member of a record shape.
type Field struct {
	Name        string
	Shape       Shape
	Description string
	Required    bool
	Constraints Constraints
}

// Shape is the closed tagged union of target shapes. Exactly one variant is
// meaningful per value: Elem is set for KindSequence, Fields for KindRecord,
// Format optionally refines KindString.
type Shape struct {
	Kind   Kind
	Format string
	Elem   *Shape
	Fields []Field
}

// Int returns a signed-integer shape.
func Int() Shape { return Shape{Kind: KindInt} }

// Float returns a floating-point shape.
func Float() Shape { return Shape{Kind: KindFloat} }

// Bool returns a boolean shape.
func Bool() Shape { return Shape{Kind: KindBool} }

// String returns a plain string shape.
func String() Shape { return Shape{Kind: KindString} }

// DateTime returns a string shape refined as an RFC 3339 timestamp.
func DateTime() Shape { return Shape{Kind: KindString, Format: FormatDateTime} }

// GUID returns a string shape refined as a UUID.
func GUID() Shape { return Shape{Kind: KindString, Format: FormatGUID} }

// SequenceOf returns a sequence shape whose elements have the given shape.
func SequenceOf(elem Shape) Shape {
	return Shape{Kind: KindSequence, Elem: &elem}
}

// RecordOf returns a structured-record shape with the given fields.
func RecordOf(fields ...Field) Shape {
	return Shape{Kind: KindRecord, Fields: fields}
}

// FriendlyName returns the human-readable type name the describer renders:
// string, integer, number, boolean, datetime, GUID-string, array or object.
func (s Shape) FriendlyName() string {
	switch s.Kind {
	case KindString:
		switch s.Format {
		case FormatDateTime:
			return "datetime"
		case FormatGUID:
			return "GUID-string"
		}
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindSequence:
		return "array"
	default:
		return "object"
	}
}
