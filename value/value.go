package value

import (
	"fmt"
	"strconv"
)

// Kind tags which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBoolean:
		return "BOOLEAN"
	default:
		return "NULL"
	}
}

// Value is a tagged scalar: exactly one of the fields below is meaningful,
// selected by Kind.
type Value struct {
	kind Kind
	i    int64
	r    float64
	s    string
	b    bool
}

// Null is the singular null Value.
var Null = Value{kind: KindNull}

func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }
func Real(r float64) Value  { return Value{kind: KindReal, r: r} }
func Text(s string) Value   { return Value{kind: KindText, s: s} }
func Boolean(b bool) Value  { return Value{kind: KindBoolean, b: b} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload; valid only when Kind() == KindInteger.
func (v Value) Int() int64 { return v.i }

// Float returns the real payload; valid only when Kind() == KindReal.
func (v Value) Float() float64 { return v.r }

// Text returns the text payload; valid only when Kind() == KindText.
func (v Value) Text() string { return v.s }

// Bool returns the boolean payload; valid only when Kind() == KindBoolean.
func (v Value) Bool() bool { return v.b }

// Equal implements the spec's equality rule: different variants are never
// equal, and Null participates in equality (WHERE c = NULL matches NULL
// rows), by design per the source behavior this engine preserves.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.i == other.i
	case KindReal:
		return v.r == other.r
	case KindText:
		return v.s == other.s
	case KindBoolean:
		return v.b == other.b
	default:
		return false
	}
}

// HashKey returns a string uniquely identifying this Value's variant and
// content, suitable as a map key for index buckets. Null never appears as a
// HashKey because callers must exclude Null values before indexing.
func (v Value) HashKey() string {
	switch v.kind {
	case KindInteger:
		return "i:" + strconv.FormatInt(v.i, 10)
	case KindReal:
		return "r:" + strconv.FormatFloat(v.r, 'g', -1, 64)
	case KindText:
		return "s:" + v.s
	case KindBoolean:
		if v.b {
			return "b:true"
		}
		return "b:false"
	default:
		return "n:"
	}
}

// String renders the Value the way query results and the shell display it.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	case KindText:
		return v.s
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return "NULL"
	}
}

// GoValue returns the value in a form natural for JSON encoding: int64,
// float64, string, bool, or nil.
func (v Value) GoValue() interface{} {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindReal:
		return v.r
	case KindText:
		return v.s
	case KindBoolean:
		return v.b
	default:
		return nil
	}
}

// FromGoValue reconstructs a Value from a decoded JSON scalar, used when
// replaying a persisted row. The declared column Kind disambiguates
// encoding/json's untyped float64 for JSON numbers between Integer and Real.
func FromGoValue(raw interface{}, want Kind) Value {
	if raw == nil {
		return Null
	}
	switch want {
	case KindInteger:
		switch n := raw.(type) {
		case float64:
			if n == float64(int64(n)) {
				return Integer(int64(n))
			}
		case int64:
			return Integer(n)
		case string:
			return Text(n)
		}
	case KindReal:
		switch n := raw.(type) {
		case float64:
			return Real(n)
		case string:
			return Text(n)
		}
	case KindBoolean:
		switch b := raw.(type) {
		case bool:
			return Boolean(b)
		case string:
			return Text(b)
		}
	case KindText:
		if s, ok := raw.(string); ok {
			return Text(s)
		}
	}
	// The declared type is advisory (spec.md §3): whatever JSON actually
	// decoded to is preserved verbatim rather than coerced or rejected.
	switch n := raw.(type) {
	case float64:
		if n == float64(int64(n)) {
			return Integer(int64(n))
		}
		return Real(n)
	case string:
		return Text(n)
	case bool:
		return Boolean(n)
	default:
		return Text(fmt.Sprintf("%v", n))
	}
}
