package lang

import "strconv"

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindString Kind = iota
	KindPath
	KindNumber
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindPath:
		return "path"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a literal argument to a macro call. It is a tagged union over
// string, path, and signed integer variants, immutable once constructed.
type Value struct {
	Kind Kind
	Str  string // set when Kind is KindString
	Path string // set when Kind is KindPath
	Num  int64  // set when Kind is KindNumber
}

// NewString creates a string Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NewPath creates a path Value.
func NewPath(p string) Value {
	return Value{Kind: KindPath, Path: p}
}

// NewNumber creates a number Value.
func NewNumber(n int64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// String renders the value in macro argument syntax.
func (v Value) String() string {
	switch v.Kind {
	case KindPath:
		return "#" + v.Path + "#"
	case KindNumber:
		return strconv.FormatInt(v.Num, 10)
	default:
		return strconv.Quote(v.Str)
	}
}

// ParameterType declares the accepted type of one call parameter in a
// [FunctionDescriptor] signature.
type ParameterType int

const (
	ParamString ParameterType = iota
	ParamPath
	ParamNumber
)

// String returns the name of the parameter type.
func (p ParameterType) String() string {
	switch p {
	case ParamString:
		return "string"
	case ParamPath:
		return "path"
	case ParamNumber:
		return "number"
	default:
		return "unknown"
	}
}

// FunctionDescriptor describes one function a [Plugin] exposes. Signatures
// enumerate acceptable argument-type tuples for documentation and
// introspection; dispatch does not validate arguments against them, and
// plugins are expected to check their own arguments.
type FunctionDescriptor struct {
	Name       string
	Signatures [][]ParameterType
}
