// Package ast defines the tagged tree shared by both grammars.
//
// Every node is one of a closed set of variants and reports its variant
// through Kind. Code walking the tree switches on the concrete type and
// handles every variant; the default branch is reserved for reporting an
// unexpected node. Expressions also satisfy Stmt so that a bare expression
// can stand as a statement.
//
// Compound assignment never appears in the tree: x op= e is stored as
// Assignment{x, BinaryExpression{op, Identifier x, e}}. An if/elif/else
// chain is a right-leaning sequence of IfStatement nodes linked through
// the Else field.
package ast
