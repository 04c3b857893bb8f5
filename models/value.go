package models

import (
	"math"
	"strconv"
)

// Kind tags the type held by a Value
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "missing"
	}
}

// Value is a single dataset cell: missing, a number or a string
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Missing returns the canonical missing-value marker
func Missing() Value { return Value{Kind: KindMissing} }

// Number wraps a float64 cell
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// String wraps a text cell
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// IsMissing reports whether the cell is absent, an empty string or NaN
func (v Value) IsMissing() bool {
	switch v.Kind {
	case KindMissing:
		return true
	case KindString:
		return v.Str == ""
	default:
		return math.IsNaN(v.Num)
	}
}

// Float returns the numeric content; missing cells yield NaN
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindMissing:
		return math.NaN(), true
	}
	if v.Str == "" {
		return math.NaN(), true
	}
	return 0, false
}

// String renders the cell the way the text reports print it
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	default:
		return "NaN"
	}
}
