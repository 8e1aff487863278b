package ast

import (
	"reflect"
	"testing"
)

func sampleChain() *IfStatement {
	x := &Identifier{Name: "x"}
	return &IfStatement{
		Cond: &BinaryExpression{Op: ">", Left: x, Right: &NumberLiteral{Value: "0"}},
		Then: &Block{Stmts: []Stmt{&Assignment{Name: "y", Value: &NumberLiteral{Value: "1"}}}},
		Else: &IfStatement{
			Cond: &BinaryExpression{Op: "<", Left: x, Right: &NumberLiteral{Value: "0"}},
			Then: &Block{},
			Else: &Block{Stmts: []Stmt{&EmptyStatement{}}},
		},
	}
}

func TestBranches(t *testing.T) {
	links, final := sampleChain().Branches()
	if len(links) != 2 {
		t.Fatalf("Branches() returned %d links, want 2", len(links))
	}
	if _, ok := final.(*Block); !ok {
		t.Errorf("final branch = %T, want *Block", final)
	}

	single := &IfStatement{Cond: &Identifier{Name: "a"}, Then: &Block{}}
	links, final = single.Branches()
	if len(links) != 1 || final != nil {
		t.Errorf("Branches() on a lone if = %d links, final %v", len(links), final)
	}
}

func TestInspectVisitsInSourceOrder(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&VariableDeclaration{Type: "int", Name: "x", Init: &NumberLiteral{Value: "5"}},
		sampleChain(),
	}}

	var kinds []Kind
	Inspect(prog, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	want := []Kind{
		KindProgram,
		KindVariableDeclaration, KindNumberLiteral,
		KindIfStatement, KindBinaryExpression, KindIdentifier, KindNumberLiteral,
		KindBlock, KindAssignment, KindNumberLiteral,
		KindIfStatement, KindBinaryExpression, KindIdentifier, KindNumberLiteral,
		KindBlock,
		KindBlock, KindEmptyStatement,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Inspect() order =\n%v\nwant\n%v", kinds, want)
	}
}

func TestInspectPrune(t *testing.T) {
	count := 0
	Inspect(sampleChain(), func(n Node) bool {
		count++
		return n.Kind() != KindIfStatement
	})
	if count != 1 {
		t.Errorf("Inspect() visited %d nodes after pruning at the root, want 1", count)
	}
}

func TestToMap(t *testing.T) {
	loop := &ForLoop{
		Shape: ForRange,
		Var:   "i",
		Stop:  &NumberLiteral{Value: "10"},
		Body:  &Block{Stmts: []Stmt{&PrintStatement{Args: []Expr{&Identifier{Name: "i"}}}}},
	}
	m := ToMap(loop)

	if m["kind"] != "ForLoop" || m["shape"] != "range" || m["var"] != "i" {
		t.Errorf("ToMap() header = %v", m)
	}
	if _, ok := m["start"]; ok {
		t.Error("omitted start should not be dumped")
	}
	body := m["body"].(map[string]interface{})
	stmts := body["stmts"].([]interface{})
	if stmts[0].(map[string]interface{})["kind"] != "PrintStatement" {
		t.Errorf("nested statement = %v", stmts[0])
	}
}

func TestNumberLiteralIsFloat(t *testing.T) {
	tests := map[string]bool{"5": false, "-3": false, "2.5": true, "10.": true}
	for value, want := range tests {
		if got := (&NumberLiteral{Value: value}).IsFloat(); got != want {
			t.Errorf("IsFloat(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestStmts(t *testing.T) {
	inc := &Increment{Name: "i", Op: "++"}
	if got := Stmts(inc); len(got) != 1 || got[0] != inc {
		t.Errorf("Stmts(non-block) = %v", got)
	}
	if got := Stmts(nil); got != nil {
		t.Errorf("Stmts(nil) = %v", got)
	}
}

func TestAssigns(t *testing.T) {
	n := &Identifier{Name: "n"}
	tests := []struct {
		name string
		body Stmt
		want bool
	}{
		{"assignment", &Block{Stmts: []Stmt{&Assignment{Name: "n", Value: &NumberLiteral{Value: "1"}}}}, true},
		{"other name", &Block{Stmts: []Stmt{&Assignment{Name: "m", Value: n}}}, false},
		{"read only", &Block{Stmts: []Stmt{&IOStatement{Op: Output, Exprs: []Expr{n}}}}, false},
		{"increment", &Block{Stmts: []Stmt{&Increment{Name: "n", Op: "++"}}}, true},
		{"cin", &Block{Stmts: []Stmt{&IOStatement{Op: Input, Exprs: []Expr{n}}}}, true},
		{"nested in branch", sampleChain(), false},
		{"inner range loop", &Block{Stmts: []Stmt{&ForLoop{Shape: ForRange, Var: "n", Stop: &NumberLiteral{Value: "3"}, Body: &Block{}}}}, true},
		{"assignment expression", &Block{Stmts: []Stmt{&BinaryExpression{Op: "=", Left: n, Right: &NumberLiteral{Value: "0"}}}}, true},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assigns(tt.body, "n"); got != tt.want {
				t.Errorf("Assigns() = %v, want %v", got, tt.want)
			}
		})
	}
}
