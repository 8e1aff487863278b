// Package cpp implements the C++ subset: its tokenizer, parser and
// semantic analyzer, and the generator that renders a tree parsed from the
// Python subset as C++.
//
// The subset covers typed declarations, assignment and compound
// assignment, if/else if/else, while and three-clause for loops, cout and
// cin chains, parameterless functions and return. Binary expressions are a
// flat left-to-right chain without operator precedence.
package cpp
