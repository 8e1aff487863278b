// Package python implements the Python subset: its tokenizer, parser and
// semantic analyzer, and the generator that renders a tree parsed from the
// C++ subset as Python.
//
// Tokens carry line and column and the parser derives suites from token
// columns, so no INDENT or DEDENT tokens exist. f-strings are desugared by
// the parser into a "+" chain that starts with a string literal.
package python
