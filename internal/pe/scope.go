package pe

// Var is a variable identity: a main name plus an alias set (e.g. "this.x"
// and "x" refer to the same field and so share one Var with both names in
// its alias set), owned by the scope it was declared or first referenced
// in.
type Var struct {
	Scope      *Scope
	MainName   string
	AliasSet   map[string]struct{}
}

// NewVar creates a Var whose alias set contains only its main name.
func NewVar(scope *Scope, mainName string) *Var {
	return &Var{
		Scope:    scope,
		MainName: mainName,
		AliasSet: map[string]struct{}{mainName: {}},
	}
}

// NewVarWithAliases creates a Var whose alias set contains mainName plus the
// given aliases.
func NewVarWithAliases(scope *Scope, mainName string, aliases []string) *Var {
	v := NewVar(scope, mainName)
	for _, a := range aliases {
		v.AliasSet[a] = struct{}{}
	}
	return v
}

// AddAlias records an additional name referring to the same variable.
func (v *Var) AddAlias(name string) {
	v.AliasSet[name] = struct{}{}
}

// HasAlias reports whether name is in this var's alias set.
func (v *Var) HasAlias(name string) bool {
	_, ok := v.AliasSet[name]
	return ok
}

// Scope is a lexical region owning a set of Vars; scopes form a tree by
// parent pointer. Each scope corresponds to a block in the PE tree.
type Scope struct {
	Block     BlockInfo
	Parent    *Scope
	variables map[string]*Var // keyed by MainName
}

// NewScope creates a scope for the given owning block with an optional
// parent.
func NewScope(block BlockInfo, parent *Scope) *Scope {
	return &Scope{Block: block, Parent: parent, variables: make(map[string]*Var)}
}

// AddVariable adds v to this scope. A no-op (returns false) if this scope
// already directly contains a var with the same main name.
func (s *Scope) AddVariable(v *Var) bool {
	if s.HasVariableDirectly(v.MainName) {
		return false
	}
	s.variables[v.MainName] = v
	v.Scope = s
	return true
}

// HasVariableDirectly reports whether this scope (not its ancestors)
// contains a var with any alias equal to name.
func (s *Scope) HasVariableDirectly(name string) bool {
	for _, v := range s.variables {
		if v.HasAlias(name) {
			return true
		}
	}
	return false
}

// HasVariable reports whether this scope or any ancestor contains a var
// with any alias equal to name.
func (s *Scope) HasVariable(name string) bool {
	if s.HasVariableDirectly(name) {
		return true
	}
	if s.Parent != nil {
		return s.Parent.HasVariable(name)
	}
	return false
}

// SearchVariable walks the parent chain starting at s and returns the
// nearest Var whose alias set contains name, or nil if none is found.
func (s *Scope) SearchVariable(name string) *Var {
	for cur := s; cur != nil; cur = cur.Parent {
		for _, v := range cur.variables {
			if v.HasAlias(name) {
				return v
			}
		}
	}
	return nil
}

// Variables returns the vars directly owned by this scope, in no
// particular order.
func (s *Scope) Variables() []*Var {
	out := make([]*Var, 0, len(s.variables))
	for _, v := range s.variables {
		out = append(out, v)
	}
	return out
}
