package parser

import (
	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/token"
)

type Parser struct {
	doc      *ast.Document
	declared map[string]bool
	tokens   []token.Token
	pos      int
}

func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens:   tokens,
		declared: make(map[string]bool),
	}
}

// Parse reads a whole document: declarations and root elements.
func (p *Parser) Parse() (*ast.Document, error) {
	p.doc = &ast.Document{}
	for p.peek() != nil {
		if err := p.parseForm(); err != nil {
			return nil, err
		}
	}
	return p.doc, nil
}

// ParseElement reads exactly one element.
func (p *Parser) ParseElement() (*jsx.Element, error) {
	el, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, p.errorf(t, "unexpected %q after element", t.Value)
	}
	return el, nil
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

// peekHead returns the identifier after a '(' without consuming anything.
func (p *Parser) peekHead() string {
	if p.pos+1 >= len(p.tokens) {
		return ""
	}
	t := p.tokens[p.pos]
	head := p.tokens[p.pos+1]
	if t.Type != token.LParen || head.Type != token.Ident {
		return ""
	}
	return head.Value
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, p.eof()
	}
	if t.Type == token.Illegal {
		return nil, p.errorf(t, "%s", t.Value)
	}
	if t.Type != typ {
		return nil, p.errorf(t, "expected %v, got %q", typ, t.Value)
	}
	return t, nil
}

func (p *Parser) errorf(t *token.Token, msg string, args ...any) error {
	return errors.Syntax(t.Line, msg, args...)
}

func (p *Parser) eof() error {
	line := 0
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return errors.Syntax(line, "unexpected end of input")
}

func pos(t *token.Token) jsx.Pos {
	return jsx.Pos{Line: t.Line, Col: t.Col}
}
