package parser

import (
	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/token"
)

// Heads with a fixed meaning inside an element. They cannot be used as
// element tags.
const (
	headDeclare  = "declare"
	headText     = "text"
	headExpr     = "expr"
	headSpread   = "spread"
	headAttr     = "attr"
	headAttrs    = "attrs"
	headFragment = "fragment"
)

func (p *Parser) parseForm() error {
	if p.peekHead() == headDeclare {
		return p.parseDeclare()
	}
	el, err := p.parseElement()
	if err != nil {
		return err
	}
	p.doc.Roots = append(p.doc.Roots, el)
	return nil
}

// (declare NAME TYPE)
func (p *Parser) parseDeclare() error {
	open, _ := p.expect(token.LParen)
	p.next()
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	typ, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	class, ok := jsx.ParseTypeClass(typ.Value)
	if !ok {
		return p.errorf(typ, "unknown type %q (want element, array, map or unknown)", typ.Value)
	}
	if p.declared[name.Value] {
		return errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Line(name.Line).
			Node(name.Value).
			Detail("declared twice").
			Build()
	}
	if _, err := p.expect(token.RParen); err != nil {
		return err
	}
	p.declared[name.Value] = true
	p.doc.Declarations = append(p.doc.Declarations, ast.Declaration{
		Name:  name.Value,
		Class: class,
		At:    pos(open),
	})
	return nil
}

// (TAG item*)
func (p *Parser) parseElement() (*jsx.Element, error) {
	open, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	tag, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	switch tag.Value {
	case headDeclare, headText, headExpr, headSpread, headAttr, headAttrs, headFragment:
		return nil, p.errorf(tag, "%q is not valid here", tag.Value)
	}
	el := &jsx.Element{Tag: tag.Value, At: pos(open)}
	children, err := p.parseItems(el)
	if err != nil {
		return nil, err
	}
	el.Children = children
	return el, nil
}

// parseItems reads items up to and including the closing paren. Attribute
// items are added to el, which is nil inside fragments.
func (p *Parser) parseItems(el *jsx.Element) ([]jsx.Child, error) {
	var children []jsx.Child
	for {
		t := p.peek()
		if t == nil {
			return nil, p.eof()
		}
		switch t.Type {
		case token.RParen:
			p.next()
			return children, nil
		case token.String:
			p.next()
			children = append(children, &jsx.Text{Value: DecodeString(t.Value), At: pos(t)})
			continue
		case token.LParen:
		default:
			_, err := p.expect(token.LParen)
			return nil, err
		}

		switch head := p.peekHead(); head {
		case headAttr, headAttrs:
			if el == nil {
				return nil, p.errorf(t, "attributes are not allowed in a fragment")
			}
			attr, err := p.parseAttribute(head)
			if err != nil {
				return nil, err
			}
			el.Attributes = append(el.Attributes, attr)
		default:
			child, err := p.parseChild(head)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}
}

func (p *Parser) parseChild(head string) (jsx.Child, error) {
	switch head {
	case headText:
		open := p.next()
		p.next()
		s, err := p.expect(token.String)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &jsx.Text{Value: DecodeString(s.Value), At: pos(open)}, nil
	case headExpr, headSpread:
		open := p.next()
		p.next()
		child := &jsx.ExpressionChild{At: pos(open), Spread: head == headSpread}
		if t := p.peek(); t != nil && t.Type == token.RParen && head == headExpr {
			p.next()
			return child, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		child.Expr = e
		return child, nil
	case headFragment:
		open := p.next()
		p.next()
		children, err := p.parseItems(nil)
		if err != nil {
			return nil, err
		}
		return &jsx.Fragment{Children: children, At: pos(open)}, nil
	}
	return p.parseElement()
}

// (attr NAME [expr]) | (attrs expr)
func (p *Parser) parseAttribute(head string) (jsx.AttributeLike, error) {
	open := p.next()
	p.next()
	if head == headAttrs {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &jsx.SpreadAttribute{Expr: e, At: pos(open)}, nil
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	attr := &jsx.Attribute{Name: name.Value, At: pos(open)}
	if t := p.peek(); t != nil && t.Type == token.RParen {
		p.next()
		return attr, nil
	}
	if attr.Value, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return attr, nil
}
