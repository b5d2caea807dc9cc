package parser

import (
	"context"
	"fmt"
	"io"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Parser provides Java source parsing using tree-sitter's Java grammar.
type Parser struct {
	parser *sitter.Parser
}

// New creates a new Parser instance with the Java grammar.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &Parser{parser: p}
}

// ParseResult is the result of parsing Java source code.
type ParseResult struct {
	Tree       *sitter.Tree
	RootNode   *sitter.Node
	SourceCode []byte
}

// Parse parses Java source and returns the concrete-syntax tree.
func (p *Parser) Parse(ctx context.Context, source []byte) (*ParseResult, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("syntax errors found in source code")
	}

	return &ParseResult{Tree: tree, RootNode: root, SourceCode: source}, nil
}

// ParseFile reads all of reader and parses it as Java source.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*ParseResult, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return p.Parse(ctx, source)
}

// ParseToAST parses source and translates the concrete-syntax tree into
// the abstract Node tree the PE builder consumes.
func (p *Parser) ParseToAST(ctx context.Context, source []byte) (*Node, error) {
	result, err := p.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	return NewTranslator(result.SourceCode).Translate(result.RootNode), nil
}

// HasSyntaxErrors reports whether the concrete-syntax tree rooted at node
// contains any error or missing nodes.
func (p *Parser) HasSyntaxErrors(node *sitter.Node) bool {
	hasError := false
	walk(node, func(n *sitter.Node) bool {
		if n.IsError() || n.IsMissing() {
			hasError = true
			return false
		}
		return true
	})
	return hasError
}

func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		walk(n.Child(i), visit)
	}
}
