package shape

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	timeType = reflect.TypeOf((*time.Time)(nil)).Elem()
	uuidType = reflect.TypeOf((*uuid.UUID)(nil)).Elem()
)

// For derives the Shape of a Go type, so callers of the typed extraction
// API do not need to declare a descriptor by hand.
//
// Mapping rules:
//   - signed/unsigned integers -> KindInt, floats -> KindFloat
//   - bool -> KindBool, string -> KindString
//   - time.Time -> DateTime, uuid.UUID -> GUID
//   - slices and arrays -> KindSequence of the element shape
//   - structs -> KindRecord walking exported fields; field names come from
//     json tags, descriptions and constraints from jsonschema tags
//   - pointers are unwrapped; a pointer field is optional
//   - anything else (maps, interfaces) -> a generic record/object shape
//
// Supported jsonschema tag entries: description=..., required,
// minLength=N, maxLength=N, minimum=N, maximum=N, pattern=... .
// Like tool schema generation, a malformed entry is logged and skipped
// rather than failing the whole shape.
//
// Example:
//
//	type Profile struct {
//	    Name string `json:"name" jsonschema:"description=Display name,required,minLength=1"`
//	    Age  int    `json:"age" jsonschema:"minimum=0,maximum=150"`
//	}
//
//	s := shape.For[Profile]() // KindRecord with two fields
func For[T any]() Shape {
	return fromType(reflect.TypeOf((*T)(nil)).Elem())
}

func fromType(t reflect.Type) Shape {
	switch t.Kind() {
	case reflect.Ptr:
		return fromType(t.Elem())
	case reflect.String:
		return String()
	case reflect.Bool:
		return Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int()
	case reflect.Float32, reflect.Float64:
		return Float()
	case reflect.Slice, reflect.Array:
		if t == uuidType {
			return GUID()
		}
		return SequenceOf(fromType(t.Elem()))
	case reflect.Struct:
		if t == timeType {
			return DateTime()
		}
		return RecordOf(recordFields(t)...)
	case reflect.Map:
		// Open object: coercible via the record path, but with no declared
		// fields for the describer to render.
		return Shape{Kind: KindRecord}
	default:
		return Shape{}
	}
}

func recordFields(t reflect.Type) []Field {
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		jsonTag := sf.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name := sf.Name
		omitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if commaIdx > 0 {
					name = jsonTag[:commaIdx]
				}
				omitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				name = jsonTag
			}
		}

		field := Field{
			Name:     name,
			Shape:    fromType(sf.Type),
			Required: sf.Type.Kind() != reflect.Ptr && !omitEmpty,
		}
		applyTag(&field, sf.Tag.Get("jsonschema"))
		fields = append(fields, field)
	}
	return fields
}

// applyTag parses a jsonschema struct tag into the field descriptor.
// Entries are comma-separated key=value pairs, so descriptions and patterns
// cannot themselves contain commas.
func applyTag(field *Field, tag string) {
	if tag == "" {
		return
	}
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		if !hasValue {
			if key == "required" {
				field.Required = true
			}
			continue
		}
		switch key {
		case "description":
			field.Description = value
		case "pattern":
			field.Constraints.Pattern = value
		case "minLength", "maxLength":
			n, err := strconv.Atoi(value)
			if err != nil {
				slog.Error("invalid length constraint in jsonschema tag",
					"field", field.Name, "entry", item, "error", err)
				continue
			}
			if key == "minLength" {
				field.Constraints.MinLength = &n
			} else {
				field.Constraints.MaxLength = &n
			}
		case "minimum", "maximum":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				slog.Error("invalid numeric constraint in jsonschema tag",
					"field", field.Name, "entry", item, "error", err)
				continue
			}
			if key == "minimum" {
				field.Constraints.Minimum = &f
			} else {
				field.Constraints.Maximum = &f
			}
		}
	}
}
