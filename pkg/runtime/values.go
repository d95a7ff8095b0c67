package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// IntValue holds a 64-bit integer. Arithmetic wraps on overflow.
type IntValue struct {
	Val int64
}

func (v IntValue) Kind() Kind { return KindInt }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// NullValue is the sentinel held by a declared variable before its first
// assignment. It is not reachable any other way.
type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

// Display renders the textual form used by print: integers as decimal text,
// strings as-is.
func Display(v Value) string {
	switch v := v.(type) {
	case IntValue:
		return strconv.FormatInt(v.Val, 10)
	case StringValue:
		return v.Val
	case NullValue:
		return "nil"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}
