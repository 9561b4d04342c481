// Package parser implements elf-lang's Pratt (operator-precedence) parser:
// a prefix/infix parse-function map keyed by token type plus a precedence
// table, following the shape of go-dws's parser
// (_examples/CWBudde-go-dws/internal/parser/parser.go) collapsed to
// elf-lang's 9 precedence levels and extended with the `>>`/`|>` chain
// flattening spec.md §4.2/§9 calls for.
package parser

import (
	"fmt"

	"github.com/cwbudde/elf-lang/internal/ast"
	srcerrors "github.com/cwbudde/elf-lang/internal/errors"
	"github.com/cwbudde/elf-lang/internal/lexer"
	"github.com/cwbudde/elf-lang/internal/token"
)

// Precedence levels, low to high, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	OR      // ||
	AND     // &&
	COMPARE // == != > < >= <=
	THREAD  // |> (left-assoc)
	COMPOSE // >> (right-assoc)
	SUM     // + -
	PRODUCT // * /
	POSTFIX // call(...), index[...]
	PREFIX  // unary -
)

var precedences = map[token.TokenType]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       COMPARE,
	token.NOT_EQ:   COMPARE,
	token.GT:       COMPARE,
	token.LT:       COMPARE,
	token.GT_EQ:    COMPARE,
	token.LT_EQ:    COMPARE,
	token.THREAD:   THREAD,
	token.COMPOSE:  COMPOSE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   POSTFIX,
	token.LBRACK:   POSTFIX,
}

func precedenceOf(t token.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

// Parser walks a token stream and builds an *ast.Program. It never returns
// an error from Parse: malformed input surfaces as a best-effort partial
// AST plus entries in Errors(), matching spec.md §4.2's "best-effort"
// parser contract.
type Parser struct {
	l      *lexer.Lexer
	source string

	cur  token.Token
	peek token.Token

	errors      []string
	diagnostics []*srcerrors.SourceError

	prefixFns map[token.TokenType]prefixParseFn
	infixFns  map[token.TokenType]infixParseFn
}

// New builds a Parser over source text, priming cur/peek.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input), source: input}

	p.prefixFns = map[token.TokenType]prefixParseFn{
		token.INT:      p.parseIntegerLiteral,
		token.DEC:      p.parseDecimalLiteral,
		token.STR:      p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NIL:      p.parseNilLiteral,
		token.ID:       p.parseIdentifier,
		token.MINUS:    p.parsePrefixExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACK:   p.parseListLiteral,
		token.LBRACE:   p.parseSetLiteral,
		token.HASHLBR:  p.parseDictionaryLiteral,
		token.PIPE:     p.parseFunctionLiteral,
		token.OR:       p.parseFunctionLiteral,
		token.LET:      p.parseLetExpression,
		token.IF:       p.parseIfExpression,
		token.PLUS:     p.parseOperatorFunctionRef,
		token.ASTERISK: p.parseOperatorFunctionRef,
		token.SLASH:    p.parseOperatorFunctionRef,
	}

	p.infixFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACK:   p.parseIndexExpression,
		token.COMPOSE:  p.parseFunctionComposition,
		token.THREAD:   p.parseFunctionThread,
	}

	p.advance()
	p.advance()
	return p
}

// Errors returns accumulated best-effort parse diagnostics as plain strings.
func (p *Parser) Errors() []string { return p.errors }

// Diagnostics returns the same parse errors as Errors, but carrying each
// error's source position so callers can render a caret-annotated excerpt
// via SourceError.FormatWithContext (the "ast --verbose"/"elf --verbose"
// developer-diagnostics path, spec.md §6).
func (p *Parser) Diagnostics() []*srcerrors.SourceError { return p.diagnostics }

func (p *Parser) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, msg)
	p.diagnostics = append(p.diagnostics, &srcerrors.SourceError{
		Message: msg,
		Pos:     p.cur.Pos,
		Source:  p.source,
	})
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.TokenType) bool { return p.cur.Type == t }

// ParseProgram parses the full token stream into a Program.
func ParseProgram(input string) (*ast.Program, []string) {
	p := parseProgram(input)
	return p.prog, p.errors
}

// ParseProgramWithDiagnostics is ParseProgram plus position-carrying
// SourceError diagnostics, for callers that render a caret-annotated excerpt
// (the CLI's --verbose footer) instead of a bare message list.
func ParseProgramWithDiagnostics(input string) (*ast.Program, []*srcerrors.SourceError) {
	p := parseProgram(input)
	return p.prog, p.diagnostics
}

type parseResult struct {
	*Parser
	prog *ast.Program
}

func parseProgram(input string) parseResult {
	p := New(input)
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		before := p.cur
		if stmt := p.parseStatement(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.cur == before {
			p.advance() // skip a token no statement can start with
		}
		// Semicolons are optional and non-semantic.
		for p.curIs(token.SEMI) {
			p.advance()
		}
	}
	return parseResult{Parser: p, prog: prog}
}

func (p *Parser) parseStatement() ast.Statement {
	if p.curIs(token.CMT) {
		stmt := &ast.CommentStatement{Token: p.cur, Text: p.cur.Literal}
		p.advance()
		return stmt
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExpressionStatement{Token: tok, Expression: expr}
	for p.curIs(token.SEMI) {
		p.advance()
	}
	return stmt
}

// parseBlock parses `{ stmt* }`, assuming cur is the opening '{'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.cur}
	p.advance() // consume '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		before := p.cur
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.cur == before {
			p.advance() // skip a token no statement can start with
		}
		for p.curIs(token.SEMI) {
			p.advance()
		}
	}
	if p.curIs(token.RBRACE) {
		p.advance()
	} else {
		p.errorf("unterminated block starting at %v", block.Token.Pos)
	}
	return block
}

// parseExpression is the Pratt core: dispatch a prefix parse function for
// cur, then greedily fold in infix/postfix operators whose precedence
// meets minPrec, per spec.md §4.2's "consume operator if its precedence
// >= minPrec" rule.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefixFn, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.errorf("no prefix parse function for %s found", p.cur.Type)
		return nil
	}
	left := prefixFn()

	// Assignment is a special grammar production tied to an Identifier
	// prefix parse, not a generic infix operator (spec.md §4.2). By the
	// time a prefix parse function returns, cur already sits on the token
	// immediately following what it consumed — so cur, not peek, is where
	// '=' (or any other operator) would appear.
	if ident, isIdent := left.(*ast.Identifier); isIdent && p.curIs(token.ASSIGN) {
		tok := p.cur
		p.advance() // cur: start of value
		value := p.parseExpression(LOWEST)
		return &ast.AssignmentExpression{Token: tok, Name: ident, Value: value}
	}

	for precedenceOf(p.cur.Type) >= minPrec && precedenceOf(p.cur.Type) > LOWEST {
		infixFn, ok := p.infixFns[p.cur.Type]
		if !ok {
			break
		}
		left = infixFn(left)
	}
	return left
}
