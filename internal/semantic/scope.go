package semantic

import "github.com/Arking-xx/College-Thesis/internal/token"

// SymbolKind separates variables from functions
type SymbolKind int

const (
	Variable SymbolKind = iota
	Func
)

// Symbol is a bound name. For functions Type is the return type.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type Type
	Pos  token.Pos
}

// DeclareResult tells the caller which diagnostic a declaration deserves
type DeclareResult int

const (
	// Declared means the name was new in every frame
	Declared DeclareResult = iota
	// Shadowed means the name was bound and now also hides an outer binding
	Shadowed
	// Redeclared means the name already exists in the innermost frame; the
	// existing binding is kept
	Redeclared
)

type frame map[string]*Symbol

// Scope is a stack of frames. The outermost frame is the global frame and
// is never popped.
type Scope struct {
	frames []frame
}

// NewScope returns a scope holding only the global frame
func NewScope() *Scope {
	return &Scope{frames: []frame{{}}}
}

// Enter pushes a frame
func (s *Scope) Enter() {
	s.frames = append(s.frames, frame{})
}

// Exit pops the innermost frame
func (s *Scope) Exit() {
	if len(s.frames) == 1 {
		panic("semantic: Exit called on the global frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of frames, 1 at global level
func (s *Scope) Depth() int {
	return len(s.frames)
}

// Declare binds sym in the innermost frame
func (s *Scope) Declare(sym *Symbol) DeclareResult {
	top := s.frames[len(s.frames)-1]
	if _, exists := top[sym.Name]; exists {
		return Redeclared
	}
	top[sym.Name] = sym
	for i := len(s.frames) - 2; i >= 0; i-- {
		if _, exists := s.frames[i][sym.Name]; exists {
			return Shadowed
		}
	}
	return Declared
}

// Lookup searches the frames innermost first
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if sym, ok := s.frames[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches only the innermost frame
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.frames[len(s.frames)-1][name]
	return sym, ok
}

// Update changes the type of the innermost binding of name. It reports
// false when name is unbound.
func (s *Scope) Update(name string, typ Type) bool {
	sym, ok := s.Lookup(name)
	if ok {
		sym.Type = typ
	}
	return ok
}
