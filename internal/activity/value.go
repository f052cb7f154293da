package activity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type ValueKind string

const (
	KindNull   ValueKind = "null"
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindDate   ValueKind = "date"
)

// Value is a tagged before/after payload for a tracked field. Keeping the
// kind explicit lets the formatters dispatch on concrete type instead of
// guessing from the string form.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Date time.Time
}

func Null() Value { return Value{Kind: KindNull} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

func Date(t time.Time) Value { return Value{Kind: KindDate, Date: t} }

// IsUnset reports whether the value counts as "not set". null, a missing
// snapshot entry (zero Value) and the empty string are all equivalent.
func (v Value) IsUnset() bool {
	switch v.Kind {
	case KindNull, "":
		return true
	case KindString:
		return v.Str == ""
	}
	return false
}

func (v Value) Equal(other Value) bool {
	if v.IsUnset() && other.IsUnset() {
		return true
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	case KindDate:
		return v.Date.Equal(other.Date)
	}
	return true
}

// String renders the default string form, ignoring any field-specific
// formatting rules (those live in FormatValue).
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDate:
		return v.Date.Format("2006-01-02")
	}
	return ""
}

type valueJSON struct {
	Kind  ValueKind `json:"kind"`
	Value string    `json:"value,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.Kind}
	if out.Kind == "" {
		out.Kind = KindNull
	}
	switch v.Kind {
	case KindString:
		out.Value = v.Str
	case KindNumber:
		out.Value = strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDate:
		out.Value = v.Date.Format(time.RFC3339)
	}
	return json.Marshal(out)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var in valueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case KindNull, "":
		*v = Null()
	case KindString:
		*v = String(in.Value)
	case KindNumber:
		n, err := strconv.ParseFloat(in.Value, 64)
		if err != nil {
			return fmt.Errorf("parse number value %q: %w", in.Value, err)
		}
		*v = Number(n)
	case KindDate:
		t, err := time.Parse(time.RFC3339, in.Value)
		if err != nil {
			return fmt.Errorf("parse date value %q: %w", in.Value, err)
		}
		*v = Date(t)
	default:
		return fmt.Errorf("unknown value kind %q", in.Kind)
	}
	return nil
}
