package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/elf-lang/internal/ast"
	"github.com/cwbudde/elf-lang/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.advance()
	return ident
}

// stripDigitSeparators removes the single underscores the lexer allows
// between digits (spec.md §4.1) before handing the text to strconv.
func stripDigitSeparators(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseInt(stripDigitSeparators(tok.Literal), 10, 64)
	if err != nil {
		p.errorf("could not parse %q as integer", tok.Literal)
	}
	p.advance()
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseDecimalLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(stripDigitSeparators(tok.Literal), 64)
	if err != nil {
		p.errorf("could not parse %q as decimal", tok.Literal)
	}
	p.advance()
	return &ast.DecimalLiteral{Token: tok, Value: v, Raw: tok.Literal}
}

// unescapeString decodes the lexer's verbatim (quotes-included) literal
// text into the string's actual value, per spec.md §4.1's escape table:
// \" \\ \n \t \r decode; any other escaped byte passes through the escaped
// byte unchanged (the lexer itself never rejects an unknown escape).
func unescapeString(literal string) string {
	inner := literal
	if len(inner) >= 2 && inner[0] == '"' {
		if inner[len(inner)-1] == '"' {
			inner = inner[1 : len(inner)-1]
		} else {
			inner = inner[1:]
		}
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.StringLiteral{Token: tok, Value: unescapeString(tok.Literal)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.NilLiteral{Token: tok}
}

// parsePrefixExpression handles unary '-'. The operand is parsed at PREFIX
// precedence (the topmost level) so the operator binds tighter than any
// binary operator, including '*'/'/' (spec.md §4.2 rule 9's parenthetical).
//
// '-' with nothing that could start an operand immediately after it (e.g.
// `fold(0, -, xs)`) is instead the bare `-` operator-function reference,
// disambiguated here by checking whether the next token has a registered
// prefix parse function at all.
func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.cur
	if _, canStartOperand := p.prefixFns[p.peek.Type]; !canStartOperand {
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	}
	op := tok.Literal
	p.advance()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.curIs(token.RPAREN) {
		p.errorf("expected ')' to close grouped expression, got %s", p.cur.Type)
	} else {
		p.advance()
	}
	return expr
}

// parseOperatorFunctionRef lets `+`, `*`, `/` stand alone as first-class
// operator-function values (spec.md §4.4), e.g. `fold(0, +, xs)`. `-` is
// not registered here since it is already a prefix operator token;
// parsePrefixExpression turns a bare `-` into the same kind of Identifier.
func (p *Parser) parseOperatorFunctionRef() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.Identifier{Token: tok, Name: tok.Literal}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	op := tok.Literal
	prec := precedenceOf(tok.Type)
	p.advance()
	right := p.parseExpression(prec + 1) // all generic infix operators are left-associative
	return &ast.InfixExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseCallExpression assumes cur is '(' with left already parsed as the
// callee.
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Token: tok, Function: left, Arguments: args}
}

// parseIndexExpression assumes cur is '[' with left already parsed as the
// container.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	p.advance() // consume '['
	idx := p.parseExpression(LOWEST)
	if !p.curIs(token.RBRACK) {
		p.errorf("expected ']' to close index expression, got %s", p.cur.Type)
	} else {
		p.advance()
	}
	return &ast.IndexExpression{Token: tok, Left: left, Index: idx}
}

// parseExpressionList parses a comma-separated list of expressions,
// assuming cur is the opening delimiter, stopping at and consuming end.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	p.advance() // consume opening delimiter

	if p.curIs(end) {
		p.advance()
		return list
	}
	list = append(list, p.parseExpression(LOWEST))
	for p.curIs(token.COMMA) {
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.curIs(end) {
		p.errorf("expected %s to close list, got %s", end, p.cur.Type)
	} else {
		p.advance()
	}
	return list
}

// parseFunctionComposition flattens a run of consecutive '>>' into a single
// FunctionComposition node (spec.md §4.2 flattening rules, §9). Each
// operand is parsed one precedence level above COMPOSE so the flattening
// loop, not recursion, handles further '>>' occurrences.
func (p *Parser) parseFunctionComposition(left ast.Expression) ast.Expression {
	tok := p.cur // the first '>>'
	functions := []ast.Expression{left}
	for p.curIs(token.COMPOSE) {
		p.advance() // consume '>>'; cur -> start of next operand
		functions = append(functions, p.parseExpression(COMPOSE+1))
	}
	return &ast.FunctionComposition{Token: tok, Functions: functions}
}

// parseFunctionThread flattens a run of consecutive '|>' into a single
// FunctionThread node, mirroring parseFunctionComposition.
func (p *Parser) parseFunctionThread(left ast.Expression) ast.Expression {
	tok := p.cur // the first '|>'
	var functions []ast.Expression
	for p.curIs(token.THREAD) {
		p.advance() // consume '|>'; cur -> start of next operand
		functions = append(functions, p.parseExpression(THREAD+1))
	}
	return &ast.FunctionThread{Token: tok, Initial: left, Functions: functions}
}
