package parser

import (
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/token"
)

func (p *Parser) parseExpr() (jsx.Expr, error) {
	t := p.next()
	if t == nil {
		return nil, p.eof()
	}
	switch t.Type {
	case token.Ident:
		switch t.Value {
		case "true", "false":
			return &ast.Bool{Value: t.Value == "true", At: pos(t)}, nil
		case "nil":
			return &ast.Nil{At: pos(t)}, nil
		}
		return &ast.Ident{Name: t.Value, At: pos(t)}, nil
	case token.Number:
		v, err := parseNumber(t.Value)
		if err != nil {
			return nil, p.errorf(t, "invalid number %q", t.Value)
		}
		return &ast.Number{Raw: t.Value, Value: v, At: pos(t)}, nil
	case token.String:
		return &ast.String{Value: DecodeString(t.Value), At: pos(t)}, nil
	case token.LParen:
		return p.parseCompound(t)
	case token.Illegal:
		return nil, p.errorf(t, "%s", t.Value)
	}
	return nil, p.errorf(t, "expected expression, got %q", t.Value)
}

// parseCompound parses the form after an already consumed '('.
func (p *Parser) parseCompound(open *token.Token) (jsx.Expr, error) {
	head, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	at := pos(open)

	switch head.Value {
	case "call":
		callee, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: callee, Args: args, At: at}, nil

	case ast.OpAnd, ast.OpOr, ast.OpCoalesce:
		left, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Logical{Left: left, Right: right, Op: head.Value, At: at}, nil

	case "inc":
		name, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Increment{Target: &ast.Ident{Name: name.Value, At: pos(name)}, At: at}, nil

	case "object":
		obj := &ast.Object{At: at}
		for {
			t := p.peek()
			if t != nil && t.Type == token.RParen {
				p.next()
				return obj, nil
			}
			if _, err := p.expect(token.LParen); err != nil {
				return nil, err
			}
			kw, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			if kw.Value != "prop" {
				return nil, p.errorf(kw, "expected prop, got %q", kw.Value)
			}
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, jsx.Property{Name: name.Value, Value: value})
		}

	case "jsx":
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.JSX{Element: el, At: at}, nil
	}

	return nil, p.errorf(head, "unknown expression form %q", head.Value)
}

// parseExprList reads expressions up to and including the closing paren.
func (p *Parser) parseExprList() ([]jsx.Expr, error) {
	var out []jsx.Expr
	for {
		t := p.peek()
		if t == nil {
			return nil, p.eof()
		}
		if t.Type == token.RParen {
			p.next()
			return out, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}
