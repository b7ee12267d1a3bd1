package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindInteger Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "INTEGER"
	case KindText:
		return "TEXT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a closed tagged union over the cell types the engine supports.
// Exactly one of Int/Str is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
}

func NewInteger(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

func NewText(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Parse converts a raw cell into a Value. A cell made only of decimal
// digits becomes an Integer; everything else (including digit runs that
// overflow int64) becomes Text.
func Parse(cell string) Value {
	if !allDigits(cell) {
		return NewText(cell)
	}
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return NewText(cell)
	}
	return NewInteger(n)
}

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or 1. The order is total: values of different
// kinds order by kind, values of the same kind order naturally (numeric
// for Integer, lexicographic for Text). Index construction relies on
// this being a strict weak ordering over arbitrary pairs.
func (v Value) Compare(other Value) int {
	if v.Kind != other.Kind {
		if v.Kind < other.Kind {
			return -1
		}
		return 1
	}
	switch v.Kind {
	case KindInteger:
		switch {
		case v.Int < other.Int:
			return -1
		case v.Int > other.Int:
			return 1
		}
		return 0
	default:
		switch {
		case v.Str < other.Str:
			return -1
		case v.Str > other.Str:
			return 1
		}
		return 0
	}
}

func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// String renders the value the way it appeared in the source data.
func (v Value) String() string {
	if v.Kind == KindInteger {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Str
}
