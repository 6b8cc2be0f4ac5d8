// Package decode turns a single NDJSON line into an ordered domain.Record.
package decode

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/vburojevic/hdrift/internal/domain"
)

// Error reports a line that could not be decoded into a record
type Error struct {
	Line   int
	Reason string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// Decode parses one line into a Record. The line must hold a JSON object.
// Keys keep the position of their first occurrence; a repeated key takes
// the value of its last occurrence.
func Decode(line []byte) (domain.Record, error) {
	if !gjson.ValidBytes(line) {
		return domain.Record{}, &Error{Reason: "invalid JSON"}
	}
	doc := gjson.ParseBytes(line)
	if !doc.IsObject() {
		return domain.Record{}, &Error{Reason: fmt.Sprintf("expected JSON object, got %s", kindOf(doc))}
	}

	var rec domain.Record
	seen := make(map[string]int)
	doc.ForEach(func(key, value gjson.Result) bool {
		field := domain.Field{Key: key.Str, Value: toValue(value)}
		if i, ok := seen[field.Key]; ok {
			rec.Fields[i].Value = field.Value
			return true
		}
		seen[field.Key] = len(rec.Fields)
		rec.Fields = append(rec.Fields, field)
		return true
	})
	return rec, nil
}

// DecodeLine is Decode with the source line number attached to any error
func DecodeLine(line []byte, number int) (domain.Record, error) {
	rec, err := Decode(line)
	if err != nil {
		if de, ok := err.(*Error); ok {
			de.Line = number
		}
		return domain.Record{}, err
	}
	return rec, nil
}

func toValue(r gjson.Result) domain.Value {
	v := domain.Value{Raw: r.Raw}
	switch r.Type {
	case gjson.Null:
		v.Kind = domain.KindNull
	case gjson.False:
		v.Kind = domain.KindBool
	case gjson.True:
		v.Kind = domain.KindBool
		v.Bool = true
	case gjson.Number:
		v.Kind = domain.KindNumber
	case gjson.String:
		v.Kind = domain.KindString
		v.Str = r.Str
	case gjson.JSON:
		if r.IsArray() {
			v.Kind = domain.KindArray
		} else {
			v.Kind = domain.KindObject
		}
	}
	return v
}

func kindOf(r gjson.Result) string {
	return toValue(r).Kind.String()
}
