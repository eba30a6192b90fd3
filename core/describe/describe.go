package describe

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/leofalp/sift/shape"
)

// Describe renders s as human/model-readable structural guidance. Record
// shapes get a per-field listing and an example object; scalar and sequence
// shapes get a one-line type statement and an example value.
func Describe(s shape.Shape) string {
	var b strings.Builder

	switch s.Kind {
	case shape.KindRecord:
		b.WriteString("Respond with a single JSON object.\n")
		if len(s.Fields) > 0 {
			b.WriteString("\nFields:\n")
			writeFields(&b, s.Fields, 0)
		}
	case shape.KindSequence:
		b.WriteString("Respond with a single JSON array of ")
		b.WriteString(elemName(s))
		b.WriteString(" values.\n")
	default:
		fmt.Fprintf(&b, "Respond with a single %s value.\n", s.FriendlyName())
	}

	b.WriteString("\nExample:\n")
	b.WriteString(exampleJSON(s))
	b.WriteString("\n")
	return b.String()
}

func elemName(s shape.Shape) string {
	if s.Elem == nil {
		return "object"
	}
	return s.Elem.FriendlyName()
}

func writeFields(b *strings.Builder, fields []shape.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		description := f.Description
		if description == "" {
			description = f.Name + " field"
		}
		requirement := "optional"
		if f.Required {
			requirement = "required"
		}
		fmt.Fprintf(b, "%s- %q (%s, %s): %s%s\n",
			indent, f.Name, f.Shape.FriendlyName(), requirement, description,
			constraintSummary(f))

		// Nested records and record arrays list their own fields indented
		// under the parent.
		switch {
		case f.Shape.Kind == shape.KindRecord:
			writeFields(b, f.Shape.Fields, depth+1)
		case f.Shape.Kind == shape.KindSequence && f.Shape.Elem != nil && f.Shape.Elem.Kind == shape.KindRecord:
			writeFields(b, f.Shape.Elem.Fields, depth+1)
		}
	}
}

func constraintSummary(f shape.Field) string {
	c := f.Constraints
	if c.Empty() {
		return ""
	}
	var parts []string
	if c.MinLength != nil || c.MaxLength != nil {
		if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
			slog.Warn("inconsistent length bounds in field constraints",
				"field", f.Name, "minLength", *c.MinLength, "maxLength", *c.MaxLength)
		}
		parts = append(parts, "length "+boundInt(c.MinLength)+".."+boundInt(c.MaxLength))
	}
	if c.Minimum != nil || c.Maximum != nil {
		parts = append(parts, "range "+boundFloat(c.Minimum)+".."+boundFloat(c.Maximum))
	}
	if c.Pattern != "" {
		parts = append(parts, "pattern "+c.Pattern)
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

func boundInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func boundFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// exampleJSON serializes a placeholder instance of the shape. If
// serialization fails, a textual skeleton built directly from the field
// names and placeholder literals is emitted instead.
func exampleJSON(s shape.Shape) string {
	encoded, err := json.MarshalIndent(placeholder(s), "", "  ")
	if err != nil {
		slog.Warn("placeholder serialization failed, emitting skeleton", "error", err)
		return skeleton(s)
	}
	return string(encoded)
}

// placeholder builds an example value for the shape: fixed literals for
// scalars, a fresh UUID or timestamp for refined strings, two elements for
// arrays, and a recursively populated map for records.
func placeholder(s shape.Shape) any {
	switch s.Kind {
	case shape.KindInt:
		return 42
	case shape.KindFloat:
		return 3.14
	case shape.KindBool:
		return true
	case shape.KindString:
		switch s.Format {
		case shape.FormatDateTime:
			return time.Now().UTC().Format(time.RFC3339)
		case shape.FormatGUID:
			return uuid.NewString()
		}
		return "sample text"
	case shape.KindSequence:
		elem := shape.Shape{Kind: shape.KindRecord}
		if s.Elem != nil {
			elem = *s.Elem
		}
		return []any{placeholder(elem), placeholder(elem)}
	case shape.KindRecord:
		record := make(map[string]any, len(s.Fields))
		for _, f := range s.Fields {
			record[f.Name] = placeholder(f.Shape)
		}
		return record
	default:
		return map[string]any{}
	}
}

// skeleton renders an example by hand, without going through the JSON
// serializer. Field order follows the declaration order, unlike the map
// based placeholder path.
func skeleton(s shape.Shape) string {
	switch s.Kind {
	case shape.KindInt:
		return "42"
	case shape.KindFloat:
		return "3.14"
	case shape.KindBool:
		return "true"
	case shape.KindString:
		return `"sample text"`
	case shape.KindSequence:
		elem := "{}"
		if s.Elem != nil {
			elem = skeleton(*s.Elem)
		}
		return "[" + elem + ", " + elem + "]"
	case shape.KindRecord:
		var parts []string
		for _, f := range s.Fields {
			parts = append(parts, strconv.Quote(f.Name)+": "+skeleton(f.Shape))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "{}"
	}
}
