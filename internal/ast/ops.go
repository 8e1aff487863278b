package ast

// Operator classes shared by the grammars
var (
	comparisonOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true}
	arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true, "//": true}
)

// IsComparison reports whether op yields a boolean
func IsComparison(op string) bool { return comparisonOps[op] }

// IsArithmetic reports whether op is a numeric operator
func IsArithmetic(op string) bool { return arithmeticOps[op] }
