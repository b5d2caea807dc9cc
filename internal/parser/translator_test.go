package parser

import (
	"context"
	"testing"
)

// parseJava parses source and returns the compilation unit's first
// top-level class declaration.
func parseJava(t *testing.T, source string) *Node {
	t.Helper()
	p := New()
	ast, err := p.ParseToAST(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("ParseToAST() error = %v", err)
	}
	if ast == nil {
		t.Fatal("ParseToAST() returned nil AST")
	}
	if ast.Kind != KindCompilationUnit {
		t.Fatalf("root Kind = %s, want CompilationUnit", ast.Kind)
	}
	if len(ast.Methods) == 0 {
		t.Fatal("compilation unit has no top-level class")
	}
	return ast.Methods[0]
}

func TestTranslateSimpleMethod(t *testing.T) {
	src := `
class Calculator {
    int add(int a, int b) {
        int sum = a + b;
        return sum;
    }
}
`
	ast := parseJava(t, src)
	if ast.Kind != KindClassDeclaration {
		t.Fatalf("root Kind = %s, want ClassDeclaration", ast.Kind)
	}
	if ast.Name != "Calculator" {
		t.Errorf("class Name = %q, want Calculator", ast.Name)
	}
	if len(ast.Methods) != 1 {
		t.Fatalf("Methods = %+v, want 1", ast.Methods)
	}
	m := ast.Methods[0]
	if m.Name != "add" {
		t.Errorf("method Name = %q, want add", m.Name)
	}
	if len(m.Parameters) != 2 {
		t.Fatalf("Parameters = %+v, want 2", m.Parameters)
	}
	if len(m.Body) != 2 {
		t.Fatalf("Body = %+v, want 2 statements", m.Body)
	}
	if m.Body[0].Kind != KindVariableDeclStatement {
		t.Errorf("Body[0].Kind = %s, want VariableDeclarationStatement", m.Body[0].Kind)
	}
	if m.Body[1].Kind != KindReturnStatement {
		t.Errorf("Body[1].Kind = %s, want ReturnStatement", m.Body[1].Kind)
	}
}

func TestTranslateIfElseAndLoop(t *testing.T) {
	src := `
class C {
    void run(int n) {
        if (n > 0) {
            n = n - 1;
        } else {
            n = 0;
        }
        while (n > 0) {
            n--;
        }
    }
}
`
	ast := parseJava(t, src)
	m := ast.Methods[0]
	if len(m.Body) != 2 {
		t.Fatalf("Body = %+v, want 2 statements", m.Body)
	}
	ifStmt := m.Body[0]
	if ifStmt.Kind != KindIfStatement {
		t.Fatalf("Body[0].Kind = %s, want IfStatement", ifStmt.Kind)
	}
	if ifStmt.Condition == nil {
		t.Error("if statement has no condition")
	}
	if len(ifStmt.Body) == 0 {
		t.Error("if statement has no then-body")
	}
	if len(ifStmt.ElseBody) == 0 {
		t.Error("if statement has no else-body")
	}

	whileStmt := m.Body[1]
	if whileStmt.Kind != KindWhileStatement {
		t.Fatalf("Body[1].Kind = %s, want WhileStatement", whileStmt.Kind)
	}
	if whileStmt.Condition == nil {
		t.Error("while statement has no condition")
	}
}

func TestTranslateTryCatchFinally(t *testing.T) {
	src := `
class C {
    void run() {
        try {
            doWork();
        } catch (Exception e) {
            handle(e);
        } finally {
            cleanup();
        }
    }
}
`
	ast := parseJava(t, src)
	m := ast.Methods[0]
	if len(m.Body) != 1 || m.Body[0].Kind != KindTryStatement {
		t.Fatalf("Body = %+v, want single TryStatement", m.Body)
	}
	tryStmt := m.Body[0]
	if len(tryStmt.Body) == 0 {
		t.Error("try statement has no body")
	}
	if len(tryStmt.Catches) != 1 {
		t.Fatalf("Catches = %+v, want 1", tryStmt.Catches)
	}
	if len(tryStmt.Finally) == 0 {
		t.Error("try statement has no finally body")
	}
}

func TestHasSyntaxErrorsOnValidSource(t *testing.T) {
	p := New()
	result, err := p.Parse(context.Background(), []byte("class C { void m() {} }"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.HasSyntaxErrors(result.RootNode) {
		t.Error("HasSyntaxErrors() = true for valid source")
	}
}
