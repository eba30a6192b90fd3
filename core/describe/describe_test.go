package describe

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/leofalp/sift/internal/utils"
	"github.com/leofalp/sift/shape"
)

func exampleSection(t *testing.T, description string) string {
	t.Helper()
	_, example, found := strings.Cut(description, "Example:\n")
	if !found {
		t.Fatalf("description has no example section:\n%s", description)
	}
	return example
}

func TestDescribe_Record(t *testing.T) {
	s := shape.RecordOf(
		shape.Field{
			Name:        "name",
			Shape:       shape.String(),
			Description: "the customer's display name",
			Required:    true,
			Constraints: shape.Constraints{MinLength: utils.Ptr(1), MaxLength: utils.Ptr(50)},
		},
		shape.Field{
			Name:        "age",
			Shape:       shape.Int(),
			Required:    true,
			Constraints: shape.Constraints{Minimum: utils.Ptr(0.0), Maximum: utils.Ptr(150.0)},
		},
		shape.Field{
			Name:  "nickname",
			Shape: shape.String(),
		},
	)

	got := Describe(s)

	for _, want := range []string{
		`"name" (string, required): the customer's display name [length 1..50]`,
		`"age" (integer, required): age field [range 0..150]`,
		`"nickname" (string, optional): nickname field`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() missing line %q in:\n%s", want, got)
		}
	}

	var example map[string]any
	if err := json.Unmarshal([]byte(exampleSection(t, got)), &example); err != nil {
		t.Fatalf("example payload does not parse: %v", err)
	}
	for _, key := range []string{"name", "age", "nickname"} {
		if _, ok := example[key]; !ok {
			t.Errorf("example payload missing key %q", key)
		}
	}
}

func TestDescribe_RefinedStrings(t *testing.T) {
	s := shape.RecordOf(
		shape.Field{Name: "id", Shape: shape.GUID(), Required: true},
		shape.Field{Name: "created", Shape: shape.DateTime(), Required: true},
	)

	got := Describe(s)
	if !strings.Contains(got, "GUID-string") {
		t.Errorf("Describe() missing GUID-string friendly name:\n%s", got)
	}
	if !strings.Contains(got, "datetime") {
		t.Errorf("Describe() missing datetime friendly name:\n%s", got)
	}

	var example map[string]string
	if err := json.Unmarshal([]byte(exampleSection(t, got)), &example); err != nil {
		t.Fatalf("example payload does not parse: %v", err)
	}
	if _, err := uuid.Parse(example["id"]); err != nil {
		t.Errorf("example id %q is not a UUID: %v", example["id"], err)
	}
	if _, err := time.Parse(time.RFC3339, example["created"]); err != nil {
		t.Errorf("example created %q is not RFC 3339: %v", example["created"], err)
	}
}

func TestDescribe_Sequence(t *testing.T) {
	got := Describe(shape.SequenceOf(shape.Int()))
	if !strings.Contains(got, "JSON array of integer values") {
		t.Errorf("Describe() missing array statement:\n%s", got)
	}

	var example []int
	if err := json.Unmarshal([]byte(exampleSection(t, got)), &example); err != nil {
		t.Fatalf("example payload does not parse: %v", err)
	}
	if len(example) != 2 {
		t.Errorf("example array has %d elements, want exactly 2", len(example))
	}
}

func TestDescribe_Scalar(t *testing.T) {
	got := Describe(shape.Int())
	if !strings.Contains(got, "Respond with a single integer value.") {
		t.Errorf("Describe() missing scalar statement:\n%s", got)
	}
	if !strings.Contains(got, "42") {
		t.Errorf("Describe() missing example value:\n%s", got)
	}
}

func TestDescribe_NestedRecordFields(t *testing.T) {
	s := shape.RecordOf(
		shape.Field{
			Name:     "items",
			Shape:    shape.SequenceOf(shape.RecordOf(shape.Field{Name: "sku", Shape: shape.String(), Required: true})),
			Required: true,
		},
	)

	got := Describe(s)
	if !strings.Contains(got, `"items" (array, required)`) {
		t.Errorf("Describe() missing items line:\n%s", got)
	}
	if !strings.Contains(got, `  - "sku" (string, required)`) {
		t.Errorf("Describe() missing indented nested field:\n%s", got)
	}
}

// The skeleton path renders examples without the serializer, preserving
// declaration order.
func TestSkeleton(t *testing.T) {
	s := shape.RecordOf(
		shape.Field{Name: "b", Shape: shape.Int()},
		shape.Field{Name: "a", Shape: shape.SequenceOf(shape.Bool())},
	)

	got := skeleton(s)
	want := `{"b": 42, "a": [true, true]}`
	if got != want {
		t.Errorf("skeleton() = %q, want %q", got, want)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("skeleton() produced invalid JSON: %q", got)
	}
}
