package semantic

// Type is a declared or inferred value type
type Type string

const (
	Unknown  Type = ""
	Int      Type = "int"
	Float    Type = "float"
	Double   Type = "double"
	Bool     Type = "bool"
	Char     Type = "char"
	String   Type = "string"
	Void     Type = "void"
	Function Type = "function"
)

// String returns the type name, "unknown" for Unknown
func (t Type) String() string {
	if t == Unknown {
		return "unknown"
	}
	return string(t)
}

// IsNumeric reports whether arithmetic is allowed on t
func (t Type) IsNumeric() bool {
	return t == Int || t == Float || t == Double
}

// IsKnown reports whether t carries information
func (t Type) IsKnown() bool {
	return t != Unknown
}

// Compatible reports whether a value of type b may be used where a is
// expected. Numeric types are interchangeable; unknown types are accepted
// so one missing declaration does not cascade into type errors.
func Compatible(a, b Type) bool {
	if !a.IsKnown() || !b.IsKnown() {
		return true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return a == b
}

// ArithmeticResult is the type of a numeric binary operation: the widest
// floating type present, otherwise int
func ArithmeticResult(a, b Type) Type {
	switch {
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	case a == Int && b == Int:
		return Int
	default:
		return Unknown
	}
}

// ParseType maps a C++ type keyword to a Type
func ParseType(name string) Type {
	switch name {
	case "int", "float", "double", "bool", "char", "string", "void":
		return Type(name)
	}
	return Unknown
}
