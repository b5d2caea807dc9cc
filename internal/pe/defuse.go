package pe

import "strings"

// DefLevel is the four-level (six-value) def lattice: UNKNOWN < NO_DEF <
// MAY_DEF < DEF, with DEF refined into DECLARE and DECLARE_AND_DEF for
// variable declarations (DECLARE < DECLARE_AND_DEF, both still >= DEF).
type DefLevel int

const (
	DefUnknown DefLevel = iota
	DefNoDef
	DefMayDef
	DefDef
	DefDeclare
	DefDeclareAndDef
)

func (l DefLevel) String() string {
	switch l {
	case DefUnknown:
		return "UNKNOWN"
	case DefNoDef:
		return "NO_DEF"
	case DefMayDef:
		return "MAY_DEF"
	case DefDef:
		return "DEF"
	case DefDeclare:
		return "DECLARE"
	case DefDeclareAndDef:
		return "DECLARE_AND_DEF"
	default:
		return "UNKNOWN"
	}
}

// rank orders the lattice for promote(): UNKNOWN < NO_DEF < MAY_DEF < DEF <
// DECLARE < DECLARE_AND_DEF.
func (l DefLevel) rank() int {
	switch l {
	case DefUnknown:
		return 0
	case DefNoDef:
		return 1
	case DefMayDef:
		return 2
	case DefDef:
		return 3
	case DefDeclare:
		return 4
	case DefDeclareAndDef:
		return 5
	default:
		return 0
	}
}

// UseLevel is the four-level use lattice: UNKNOWN < NO_USE < MAY_USE < USE.
type UseLevel int

const (
	UseUnknown UseLevel = iota
	UseNoUse
	UseMayUse
	UseUse
)

func (l UseLevel) String() string {
	switch l {
	case UseUnknown:
		return "UNKNOWN"
	case UseNoUse:
		return "NO_USE"
	case UseMayUse:
		return "MAY_USE"
	case UseUse:
		return "USE"
	default:
		return "UNKNOWN"
	}
}

func (l UseLevel) rank() int {
	switch l {
	case UseUnknown:
		return 0
	case UseNoUse:
		return 1
	case UseMayUse:
		return 2
	case UseUse:
		return 3
	default:
		return 0
	}
}

// VarDef records how strongly a PE defines a named variable. Once computed
// for a given PE+name pair it is frozen; promote only ever raises the level.
type VarDef struct {
	Name  string
	Level DefLevel
}

// NewVarDef returns a VarDef at the given level.
func NewVarDef(name string, level DefLevel) *VarDef {
	return &VarDef{Name: name, Level: level}
}

// Promote raises this def's level to level if level outranks the current
// one; never lowers it.
func (d *VarDef) Promote(level DefLevel) {
	if level.rank() > d.Level.rank() {
		d.Level = level
	}
}

// VarUse records how strongly a PE uses a named variable.
type VarUse struct {
	Name  string
	Level UseLevel
}

// NewVarUse returns a VarUse at the given level.
func NewVarUse(name string, level UseLevel) *VarUse {
	return &VarUse{Name: name, Level: level}
}

// Promote raises this use's level to level if level outranks the current
// one; never lowers it.
func (u *VarUse) Promote(level UseLevel) {
	if level.rank() > u.Level.rank() {
		u.Level = level
	}
}

// DefUseAnalyzer computes, for every PE in a method, the set of variable
// defs and uses it directly performs (not transitively through children —
// the CFG/PDG builders walk children themselves and merge per-node results
// using each node's own defs/uses). Results are memoized per *Expression
// pointer so a PE shared by reference (impossible in this tree, but kept
// for safety against re-analysis) is only computed once.
type DefUseAnalyzer struct {
	defs map[*Expression][]*VarDef
	uses map[*Expression][]*VarUse

	// ReceiverMutators/ReceiverMayMutators classify a call's method name
	// for the purpose of deciding whether "obj.foo()" defines obj: an exact
	// or prefix match against ReceiverMutators promotes obj to DEF, and one
	// against ReceiverMayMutators to MAY_DEF, matching spec.md §4.3's
	// heuristic. Both default to the lists in internal/constants.
	ReceiverMutators    []string
	ReceiverMayMutators []string
}

// NewDefUseAnalyzer returns an analyzer seeded with the given method-name
// classification lists.
func NewDefUseAnalyzer(mutators, mayMutators []string) *DefUseAnalyzer {
	return &DefUseAnalyzer{
		defs:                make(map[*Expression][]*VarDef),
		uses:                make(map[*Expression][]*VarUse),
		ReceiverMutators:    mutators,
		ReceiverMayMutators: mayMutators,
	}
}

// classifyCall reports the def level a call's method name implies for its
// receiver, by exact or prefix match against the configured lists.
func (a *DefUseAnalyzer) classifyCall(methodName string) DefLevel {
	for _, m := range a.ReceiverMutators {
		if methodName == m || strings.HasPrefix(methodName, m) {
			return DefDef
		}
	}
	for _, m := range a.ReceiverMayMutators {
		if methodName == m || strings.HasPrefix(methodName, m) {
			return DefMayDef
		}
	}
	return DefNoDef
}

// Defs returns e's memoized direct defs, computing them on first access.
func (a *DefUseAnalyzer) Defs(e *Expression) []*VarDef {
	if e == nil {
		return nil
	}
	if d, ok := a.defs[e]; ok {
		return d
	}
	d := a.computeDefs(e)
	a.defs[e] = d
	return d
}

// Uses returns e's memoized direct uses, computing them on first access.
func (a *DefUseAnalyzer) Uses(e *Expression) []*VarUse {
	if e == nil {
		return nil
	}
	if u, ok := a.uses[e]; ok {
		return u
	}
	u := a.computeUses(e)
	a.uses[e] = u
	return u
}

func (a *DefUseAnalyzer) computeDefs(e *Expression) []*VarDef {
	switch e.Category {
	case ExprAssignment:
		target := canonicalName(firstChild(e))
		if target == "" {
			return nil
		}
		if op := operatorToken(e); op != "" && op != "=" {
			// compound assignment (+=, -=, ...) both uses and defs the target
			return []*VarDef{NewVarDef(target, DefDef)}
		}
		return []*VarDef{NewVarDef(target, DefDef)}
	case ExprPrefix, ExprPostfix:
		if op := operatorToken(e); op == "++" || op == "--" {
			if target := canonicalName(operandOf(e)); target != "" {
				return []*VarDef{NewVarDef(target, DefDef)}
			}
		}
		return nil
	case ExprVariableDeclarationFragment:
		v := firstVariable(e)
		if v == nil {
			return nil
		}
		level := DefDeclare
		if len(e.Children) > 1 {
			level = DefDeclareAndDef
		}
		return []*VarDef{NewVarDef(v.Name, level)}
	case ExprMethodInvocation:
		if e.Qualifier == nil {
			return nil
		}
		recv := canonicalName(e.Qualifier)
		if recv == "" {
			return nil
		}
		methodName := operatorName(e)
		level := a.classifyCall(methodName)
		if level == DefNoDef {
			return nil
		}
		return []*VarDef{NewVarDef(recv, level)}
	default:
		return nil
	}
}

func (a *DefUseAnalyzer) computeUses(e *Expression) []*VarUse {
	switch e.Category {
	case ExprSimpleName:
		name := canonicalName(e)
		if name == "" {
			return nil
		}
		return []*VarUse{NewVarUse(name, UseUse)}
	case ExprQualifiedName:
		if e.Qualifier != nil {
			if recv := canonicalName(e.Qualifier); recv != "" {
				return []*VarUse{NewVarUse(recv, UseUse)}
			}
		}
		return nil
	case ExprAssignment:
		var out []*VarUse
		if op := operatorToken(e); op != "" && op != "=" {
			if target := canonicalName(firstChild(e)); target != "" {
				out = append(out, NewVarUse(target, UseUse))
			}
		}
		return out
	case ExprPrefix, ExprPostfix:
		// ++/-- both reads and writes; the read is captured here, the write
		// in computeDefs.
		if target := canonicalName(operandOf(e)); target != "" {
			return []*VarUse{NewVarUse(target, UseUse)}
		}
		return nil
	case ExprMethodInvocation, ExprSuperMethodInvocation:
		var out []*VarUse
		if e.Qualifier != nil {
			if recv := canonicalName(e.Qualifier); recv != "" {
				out = append(out, NewVarUse(recv, UseUse))
			}
		}
		return out
	case ExprArrayAccess:
		var out []*VarUse
		if len(e.Children) > 0 {
			if name := canonicalName(e.Children[0]); name != "" {
				out = append(out, NewVarUse(name, UseUse))
			}
		}
		return out
	case ExprFieldAccess, ExprSuperFieldAccess:
		var out []*VarUse
		if e.Qualifier != nil {
			if recv := canonicalName(e.Qualifier); recv != "" {
				out = append(out, NewVarUse(recv, UseUse))
			}
		}
		return out
	default:
		return nil
	}
}

// nameOf returns p's variable name if p is a PE that denotes a named
// variable reference, else "". Four shapes resolve to a name: a bare
// SimpleName; an ArrayAccess whose base itself resolves to a name, checked
// recursively so a[i][j] names a (the array variable, not the indexed
// element); a FieldAccess "a.x" whose qualifier is
// a SimpleName or This (resolves to the joined "a.x"); and a QualifiedName
// whose qualifier is a SimpleName (resolves to its own joined text). A
// Variable declaration resolves to its declared name.
func nameOf(p ProgramElement) string {
	switch v := p.(type) {
	case *Expression:
		switch v.Category {
		case ExprSimpleName:
			return v.Text()
		case ExprArrayAccess:
			if len(v.Children) == 0 {
				return ""
			}
			return nameOf(v.Children[0])
		case ExprFieldAccess:
			if base := fieldAccessBase(v); base != "" {
				return base + "." + v.Text()
			}
			return ""
		case ExprQualifiedName:
			if q, ok := v.Qualifier.(*Expression); ok && q.Category == ExprSimpleName {
				return v.Text()
			}
			return ""
		default:
			return ""
		}
	case *Variable:
		return v.Name
	default:
		return ""
	}
}

// canonicalName is nameOf refined by the builder's field-alias resolution:
// when p is an *Expression the builder recognized as a field reference (a
// bare "x" with no local binding, or a "this.x"), its ResolvedAPIName holds
// the field Var's main name, shared across every spelling of that field seen
// in the method. Using that instead of the raw syntactic text is what makes
// "this.x = 5" and a later "x" in the same method collapse onto the same def-
// use identity rather than two unrelated names.
func canonicalName(p ProgramElement) string {
	name := nameOf(p)
	if name == "" {
		return ""
	}
	if e, ok := p.(*Expression); ok && e.ResolvedAPIName != "" {
		return e.ResolvedAPIName
	}
	return name
}

// fieldAccessBase returns e's qualifier's name if the qualifier is a
// SimpleName or This expression, else "".
func fieldAccessBase(e *Expression) string {
	q, ok := e.Qualifier.(*Expression)
	if !ok {
		return ""
	}
	if q.Category == ExprSimpleName || q.Category == ExprThis {
		return q.Text()
	}
	return ""
}

func firstChild(e *Expression) ProgramElement {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

func operandOf(e *Expression) ProgramElement {
	for _, c := range e.Children {
		if op, ok := c.(*Operator); ok {
			_ = op
			continue
		}
		return c
	}
	return nil
}

func operatorToken(e *Expression) string {
	for _, c := range e.Children {
		if op, ok := c.(*Operator); ok {
			return op.Token
		}
	}
	return ""
}

// operatorName returns a method invocation's method-name operator token
// (pushed by the builder as the second child after the qualifier, or the
// first child when there is no qualifier).
func operatorName(e *Expression) string {
	for _, c := range e.Children {
		if op, ok := c.(*Operator); ok {
			return op.Token
		}
	}
	return ""
}

// AllDefs returns every def e or any of its descendant expressions directly
// performs, merging duplicate names by promoting to the higher level.
func (a *DefUseAnalyzer) AllDefs(e *Expression) []*VarDef {
	merged := make(map[string]*VarDef)
	a.collectDefs(e, merged)
	out := make([]*VarDef, 0, len(merged))
	for _, d := range merged {
		out = append(out, d)
	}
	return out
}

func (a *DefUseAnalyzer) collectDefs(e *Expression, merged map[string]*VarDef) {
	if e == nil {
		return
	}
	for _, d := range a.Defs(e) {
		if existing, ok := merged[d.Name]; ok {
			existing.Promote(d.Level)
		} else {
			merged[d.Name] = NewVarDef(d.Name, d.Level)
		}
	}
	for _, c := range e.Children {
		if child, ok := c.(*Expression); ok {
			a.collectDefs(child, merged)
		}
	}
}

// AllUses returns every use e or any of its descendant expressions directly
// performs, merging duplicate names by promoting to the higher level.
func (a *DefUseAnalyzer) AllUses(e *Expression) []*VarUse {
	merged := make(map[string]*VarUse)
	a.collectUses(e, merged)
	out := make([]*VarUse, 0, len(merged))
	for _, u := range merged {
		out = append(out, u)
	}
	return out
}

func (a *DefUseAnalyzer) collectUses(e *Expression, merged map[string]*VarUse) {
	if e == nil {
		return
	}
	for _, u := range a.Uses(e) {
		if existing, ok := merged[u.Name]; ok {
			existing.Promote(u.Level)
		} else {
			merged[u.Name] = NewVarUse(u.Name, u.Level)
		}
	}
	// The assignment target and the ++/-- operand are defs, not uses, of
	// themselves — skip re-descending into the child that computeUses/
	// computeDefs already special-cased so a plain "x" isn't double-counted
	// as using itself.
	skip := skipChildForUse(e)
	for _, c := range e.Children {
		if child, ok := c.(*Expression); ok {
			if child == skip {
				continue
			}
			a.collectUses(child, merged)
		}
	}
}

// skipChildForUse returns the child of e that represents a pure write
// target (an assignment's LHS under a plain "="), which contributes no use
// of its own.
func skipChildForUse(e *Expression) ProgramElement {
	if e.Category == ExprAssignment {
		if op := operatorToken(e); op == "" || op == "=" {
			return firstChild(e)
		}
	}
	return nil
}

func firstVariable(e *Expression) *Variable {
	for _, c := range e.Children {
		if v, ok := c.(*Variable); ok {
			return v
		}
	}
	return nil
}
