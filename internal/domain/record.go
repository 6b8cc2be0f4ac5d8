package domain

// ValueKind classifies a decoded JSON value
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value taken from a record
type Value struct {
	Kind ValueKind
	// Raw is the JSON text of the value exactly as it appeared on the line.
	Raw string
	// Str holds the unescaped text for strings.
	Str string
	// Bool holds the value for booleans.
	Bool bool
}

// Composite reports whether the value is an array or an object
func (v Value) Composite() bool {
	return v.Kind == KindArray || v.Kind == KindObject
}

// Field is one key/value pair of a record
type Field struct {
	Key   string
	Value Value
}

// Record is one decoded NDJSON line. Fields keep decode order and keys are unique.
type Record struct {
	Fields []Field
}

// Len returns the number of fields in the record
func (r Record) Len() int {
	return len(r.Fields)
}

// Signature is the ordered list of scalar field keys of a record
type Signature []string

// Equal compares two signatures positionally: same keys in the same order.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share the backing array
func (s Signature) Clone() Signature {
	if s == nil {
		return nil
	}
	out := make(Signature, len(s))
	copy(out, s)
	return out
}
