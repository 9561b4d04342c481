package parser

import (
	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/token"
)

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.cur
	elements := p.parseExpressionList(token.RBRACK)
	return &ast.ListLiteral{Token: tok, Elements: elements}
}

// parseSetLiteral handles `{...}` in expression position, which is always a
// Set — Blocks only appear after `if`/`else` or as a function body
// (spec.md §4.2).
func (p *Parser) parseSetLiteral() ast.Expression {
	tok := p.cur
	elements := p.parseExpressionList(token.RBRACE)
	return &ast.SetLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseDictionaryLiteral() ast.Expression {
	tok := p.cur
	p.advance() // consume '#{'

	dict := &ast.DictionaryLiteral{Token: tok}
	if p.curIs(token.RBRACE) {
		p.advance()
		return dict
	}
	for {
		key := p.parseExpression(LOWEST)
		if !p.curIs(token.COLON) {
			p.errorf("expected ':' in dictionary literal, got %s", p.cur.Type)
		} else {
			p.advance()
		}
		value := p.parseExpression(LOWEST)
		dict.Pairs = append(dict.Pairs, ast.DictPair{Key: key, Value: value})

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.errorf("expected '}' to close dictionary literal, got %s", p.cur.Type)
	} else {
		p.advance()
	}
	return dict
}

// parseLetExpression handles `let [mut] ID = expr`.
func (p *Parser) parseLetExpression() ast.Expression {
	tok := p.cur // 'let'
	p.advance()

	mutable := false
	if p.curIs(token.MUT) {
		mutable = true
		p.advance()
	}

	if !p.curIs(token.ID) {
		p.errorf("expected identifier after let, got %s", p.cur.Type)
		return nil
	}
	name := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.advance()

	if !p.curIs(token.ASSIGN) {
		p.errorf("expected '=' in let binding, got %s", p.cur.Type)
		return nil
	}
	p.advance()

	value := p.parseExpression(LOWEST)
	return &ast.LetStatement{Token: tok, Name: name, Value: value, Mutable: mutable}
}

// parseIfExpression handles `if cond { ... } [else { ... }]`. An `else`
// followed directly by another `if` is not special-cased into an
// "else if" chain node; it parses as a Block containing a single
// Expression statement that is itself the nested IfExpression, which is
// semantically equivalent and keeps the node set exactly as small as
// spec.md §3 lists it.
func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.cur // 'if'
	p.advance()

	condition := p.parseExpression(LOWEST)
	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{' to start if-consequence, got %s", p.cur.Type)
		return &ast.IfExpression{Token: tok, Condition: condition}
	}
	consequence := p.parseBlock()

	ifExpr := &ast.IfExpression{Token: tok, Condition: condition, Consequence: consequence}
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			nested := p.parseIfExpression()
			ifExpr.Alternative = &ast.Block{
				Token:      p.cur,
				Statements: []ast.Statement{&ast.ExpressionStatement{Expression: nested}},
			}
			return ifExpr
		}
		if !p.curIs(token.LBRACE) {
			p.errorf("expected '{' to start else-block, got %s", p.cur.Type)
			return ifExpr
		}
		ifExpr.Alternative = p.parseBlock()
	}
	return ifExpr
}

// parseFunctionLiteral handles both `|p1, p2| body` and the zero-parameter
// form, which the lexer tokenizes as a single OR ("||") token rather than
// two adjacent PIPEs.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.cur
	fn := &ast.FunctionLiteral{Token: tok}

	if p.curIs(token.OR) {
		p.advance() // consume '||' whole
	} else {
		p.advance() // consume opening '|'
		for !p.curIs(token.PIPE) && !p.curIs(token.EOF) {
			if !p.curIs(token.ID) {
				p.errorf("expected parameter name, got %s", p.cur.Type)
				break
			}
			fn.Params = append(fn.Params, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})
			p.advance()
			if p.curIs(token.COMMA) {
				p.advance()
			}
		}
		if p.curIs(token.PIPE) {
			p.advance() // consume closing '|'
		} else {
			p.errorf("expected '|' to close function parameters, got %s", p.cur.Type)
		}
	}

	if p.curIs(token.LBRACE) {
		fn.Body = p.parseBlock()
	} else {
		// A single expression body is wrapped in a one-statement Block
		// (spec.md §4.2).
		bodyTok := p.cur
		expr := p.parseExpression(LOWEST)
		fn.Body = &ast.Block{
			Token:      bodyTok,
			Statements: []ast.Statement{&ast.ExpressionStatement{Token: bodyTok, Expression: expr}},
		}
	}
	return fn
}
