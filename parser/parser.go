package parser

import (
	"strconv"

	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/token"
	"github.com/samfolo/autodep/tracer"
)

type prefixParseFn func() ast.Node
type infixParseFn func(left ast.Node) ast.Node

// Parser is a single-use Pratt parser over a fixed token vector.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []*Error
	tracer tracer.Tracer

	prefix map[token.Kind]prefixParseFn
	infix  map[token.Kind]infixParseFn
}

// New constructs a Parser over tokens, which must be terminated by an EOF
// token (as lexer.Tokenize guarantees). Plain NEW_LINE tokens carry no
// information the grammar needs — spec.md §8's token-coverage invariant
// explicitly excludes them, and DOUBLE_NEW_LINE is the only newline signal
// the grammar inspects — so they are filtered out up front, letting every
// parse rule below work with "the next significant token" directly.
func New(tokens []token.Token, t tracer.Tracer) *Parser {
	if t == nil {
		t = tracer.Noop
	}
	p := &Parser{tokens: filterNewlines(tokens), tracer: t}
	p.registerHandlers()
	return p
}

func filterNewlines(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.NEW_LINE {
			continue
		}
		out = append(out, tok)
	}
	if len(out) == 0 || out[len(out)-1].Kind != token.EOF {
		out = append(out, token.Token{Kind: token.EOF})
	}
	return out
}

// Parse scans tokens into an *ast.Root. It never fails fatally: whatever was
// recovered is always returned, alongside any accumulated errors.
func Parse(tokens []token.Token, t tracer.Tracer) (*ast.Root, []*Error) {
	p := New(tokens, t)
	return p.ParseRoot(), p.errors
}

func (p *Parser) registerHandlers() {
	p.prefix = map[token.Kind]prefixParseFn{
		token.IDENT:        p.parseIdentifier,
		token.TYPE_HINT:    p.parseIdentifier,
		token.NONE:         p.parseIdentifier,
		token.INT:          p.parseIntegerLiteral,
		token.STRING:       p.parseStringLiteral,
		token.FSTRING:      p.parseFStringLiteral,
		token.RSTRING:      p.parseRStringLiteral,
		token.BSTRING:      p.parseBStringLiteral,
		token.USTRING:      p.parseUStringLiteral,
		token.DOCSTRING:    p.parseDocStringLiteral,
		token.TRUE:         p.parseBooleanLiteral,
		token.FALSE:        p.parseBooleanLiteral,
		token.BANG:         p.parsePrefixExpression,
		token.MINUS:        p.parsePrefixExpression,
		token.OPEN_PAREN:   p.parseGroupedExpression,
		token.OPEN_BRACKET: p.parseArrayLiteral,
		token.OPEN_BRACE:   p.parseMapLiteral,
	}

	p.infix = map[token.Kind]infixParseFn{
		token.EQ:            p.parseInfixExpression,
		token.NOT_EQ:        p.parseInfixExpression,
		token.LT:            p.parseInfixExpression,
		token.GT:            p.parseInfixExpression,
		token.LT_EQ:         p.parseInfixExpression,
		token.GT_EQ:         p.parseInfixExpression,
		token.PLUS:          p.parseInfixExpression,
		token.MINUS:         p.parseInfixExpression,
		token.ASTERISK:      p.parseInfixExpression,
		token.FORWARD_SLASH: p.parseInfixExpression,
		token.MODULO:        p.parseInfixExpression,
		token.ASSIGN:        p.parseInfixExpression,
		token.OPEN_PAREN:    p.parseCallExpression,
		token.OPEN_BRACKET:  p.parseIndexExpression,
		token.DOT:           p.parseDotExpression,
	}
}

// --- token cursor -----------------------------------------------------

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// advance is getNextToken: one step, clamped at EOF.
func (p *Parser) advance() {
	if p.tokens[p.pos].Kind != token.EOF {
		p.pos++
	}
}

// advanceReal is getNextRealToken: step, then keep stepping past any
// DOUBLE_NEW_LINE tokens, so the caller always lands on ordinary content (or
// a DOUBLE_NEW_LINE the caller explicitly wanted to inspect has already been
// consumed by an earlier, deliberate check).
func (p *Parser) advanceReal() {
	p.advance()
	for p.cur().Kind == token.DOUBLE_NEW_LINE {
		p.advance()
	}
}

// expect is getNextTokenOfTypeOrFail: if the next token matches, commit to
// it (cur() becomes that token) and return true; otherwise record a
// NextTokenError and leave the cursor where it was.
func (p *Parser) expect(kind token.Kind) bool {
	p.tracer.AssertNext(kind, p.peek().Kind)
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	p.recordError(&Error{Kind: NextTokenError, Pos: p.peek().Pos, Expected: kind, Actual: p.peek().Kind})
	return false
}

func (p *Parser) recordError(err *Error) {
	p.errors = append(p.errors, err)
	p.tracer.Error(err)
}

// --- comments -----------------------------------------------------------

func mergeComment(existing ast.Comment, next *ast.SingleLineComment) ast.Comment {
	switch e := existing.(type) {
	case nil:
		return next
	case *ast.SingleLineComment:
		return &ast.CommentGroup{Comments: []*ast.SingleLineComment{e, next}}
	case *ast.CommentGroup:
		merged := append(append([]*ast.SingleLineComment{}, e.Comments...), next)
		return &ast.CommentGroup{Comments: merged}
	default:
		return next
	}
}

// absorbTrailingComment consumes a COMMENT immediately following the
// current token (left's last token) and attaches it to left as a trailing
// comment. When glue is true, further immediately-following COMMENT tokens
// are glued into the same CommentGroup (the "multiline-trail" mode spec.md
// §4.2 calls out for type hints, defaults, and map-literal keys).
func (p *Parser) absorbTrailingComment(left ast.Node, glue bool) ast.Node {
	if left == nil {
		return left
	}
	var trailing ast.Comment
	for p.peek().Kind == token.COMMENT {
		p.advance()
		c := &ast.SingleLineComment{Comment: p.cur().Value, Tok: p.cur()}
		trailing = mergeComment(trailing, c)
		if !glue {
			break
		}
	}
	if trailing == nil {
		return left
	}
	cm := left.Comments()
	cm.Trailing = trailing
	ast.SetComments(left, cm)
	return left
}

// --- top level / statements ----------------------------------------------

// ParseRoot parses the whole token stream into a Root.
func (p *Parser) ParseRoot() *ast.Root {
	p.tracer.Enter("Root")
	defer p.tracer.Exit("Root")

	if p.cur().Kind == token.DOUBLE_NEW_LINE {
		p.advance()
	}

	var statements []ast.Node
	for p.cur().Kind != token.EOF {
		stmt := p.parseStatement(nil)
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.advanceReal()
	}
	return ast.NewRoot(statements)
}

func (p *Parser) parseStatement(leading ast.Comment) ast.Node {
	p.tracer.Enter("Statement")
	defer p.tracer.Exit("Statement")

	switch p.cur().Kind {
	case token.DEF:
		return p.parseFunctionDefinition(leading)
	case token.RETURN, token.COMMENT:
		return p.parseCommentOrReturnStatement(leading)
	default:
		return p.parseExpressionStatement(leading)
	}
}

// parseCommentOrReturnStatement replicates the source's dispatch collision
// between RETURN and COMMENT (spec.md §9, Open question #1): a `return`
// token is treated exactly like a comment line whose text happens to be
// "return", and the token following it is parsed as the next statement with
// that bogus "comment" attached as its leading comment.
func (p *Parser) parseCommentOrReturnStatement(leading ast.Comment) ast.Node {
	tok := p.cur()
	c := &ast.SingleLineComment{Comment: tok.Value, Tok: tok}
	merged := mergeComment(leading, c)

	p.advance()
	if p.cur().Kind == token.DOUBLE_NEW_LINE {
		stmt := ast.NewCommentStatement(tok, merged)
		return stmt
	}
	return p.parseStatement(merged)
}

func (p *Parser) parseExpressionStatement(leading ast.Comment) ast.Node {
	tok := p.cur()
	expr := p.parseExpression(LOWEST, leading, false)
	return ast.NewExpressionStatement(tok, expr)
}

// parseBlockStatement records the opening token's scope and consumes
// statements until the indentation drops below it or EOF is reached.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	p.tracer.Enter("BlockStatement")
	defer p.tracer.Exit("BlockStatement")

	tok := p.cur()
	scope := tok.Scope

	var statements []ast.Node
	for p.cur().Kind != token.EOF && p.cur().Scope >= scope {
		stmt := p.parseStatement(nil)
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.advanceReal()
	}
	// The loop leaves the cursor on the first token after the block; step
	// back one so the caller's own advance lands on that token, not past it.
	if p.pos > 0 {
		p.pos--
	}
	return ast.NewBlockStatement(tok, statements)
}

// --- function definitions -------------------------------------------------

func (p *Parser) parseFunctionDefinition(leading ast.Comment) ast.Node {
	p.tracer.Enter("FunctionDefinition")
	defer p.tracer.Exit("FunctionDefinition")

	tok := p.cur() // DEF
	if !p.expect(token.IDENT) {
		return nil
	}
	name := ast.NewIdentifier(p.cur())

	if !p.expect(token.OPEN_PAREN) {
		return nil
	}
	params := p.parseParameterList()

	var typeHint *ast.Identifier
	if p.peek().Kind == token.POINT {
		p.advance() // on "->"
		p.advance() // on the return-type token
		if p.cur().Kind == token.TYPE_HINT || p.cur().Kind == token.NONE {
			typeHint = ast.NewIdentifier(p.cur())
		} else {
			p.recordError(&Error{Kind: NextTokenError, Pos: p.cur().Pos, Expected: token.TYPE_HINT, Actual: p.cur().Kind})
		}
	}

	if !p.expect(token.COLON) {
		return nil
	}
	p.advanceReal()
	body := p.parseBlockStatement()

	fn := ast.NewFunctionDefinition(tok, name, params, body)
	fn.TypeHint = typeHint
	ast.SetComments(fn, ast.CommentMap{Leading: leading})
	return fn
}

func (p *Parser) parseParameter(leading ast.Comment) ast.Node {
	tok := p.cur()
	if tok.Kind != token.IDENT {
		p.recordError(&Error{Kind: NextTokenError, Pos: tok.Pos, Expected: token.IDENT, Actual: tok.Kind})
		return nil
	}
	name := ast.NewIdentifier(tok)

	var typ *ast.Identifier
	if p.peek().Kind == token.COLON {
		p.advance() // on ":"
		p.advance() // on the type-hint token
		if p.cur().Kind == token.TYPE_HINT || p.cur().Kind == token.IDENT {
			typ = ast.NewIdentifier(p.cur())
		} else {
			p.recordError(&Error{Kind: NextTokenError, Pos: p.cur().Pos, Expected: token.TYPE_HINT, Actual: p.cur().Kind})
		}
	}

	var def ast.Node
	if p.peek().Kind == token.ASSIGN {
		p.advance() // on "="
		p.advance() // on default value's first token
		def = p.parseExpression(LOWEST, nil, false)
	}

	param := ast.NewParameter(tok, name, typ, def)
	ast.SetComments(param, ast.CommentMap{Leading: leading})
	p.absorbTrailingComment(param, true)
	return param
}

func (p *Parser) parseParameterList() *ast.ParameterList {
	tok := p.cur() // "("
	elements, trailing := p.parseCommaList(token.CLOSE_PAREN, p.parseParameter)

	params := make([]*ast.Parameter, 0, len(elements))
	for _, e := range elements {
		if prm, ok := e.(*ast.Parameter); ok {
			params = append(params, prm)
		}
	}
	list := ast.NewParameterList(tok, params)
	ast.SetComments(list, ast.CommentMap{Trailing: trailing})
	return list
}

// --- shared comma-list parsing --------------------------------------------

// parseCommaList implements the shared list-parsing algorithm from spec.md
// §4.2, parametrized by the element parser. It backs ExpressionList,
// KeyValueExpressionList and ParameterList alike (spec.md §9's explicit
// recommendation to de-duplicate the two hand-rolled list parsers the
// source carries).
func (p *Parser) parseCommaList(close token.Kind, parseElement func(leading ast.Comment) ast.Node) ([]ast.Node, ast.Comment) {
	var elements []ast.Node
	var trailing ast.Comment

	if p.peek().Kind == close {
		p.advance()
		return elements, trailing
	}

	p.advance()
	var leading ast.Comment
	if p.cur().Kind == token.COMMENT {
		leading = &ast.SingleLineComment{Comment: p.cur().Value, Tok: p.cur()}
		p.advance()
	}
	if el := parseElement(leading); el != nil {
		elements = append(elements, el)
	}

	for p.peek().Kind == token.COMMA {
		p.advance() // on ","
		p.advance() // past the comma

		var next ast.Comment
		if p.cur().Kind == token.COMMENT {
			c := &ast.SingleLineComment{Comment: p.cur().Value, Tok: p.cur()}
			if p.peek().Kind == close {
				trailing = c
				p.advance()
				return elements, trailing
			}
			next = c
			p.advance()
		}
		if p.cur().Kind == close {
			// Trailing comma: the cursor already sits on the close
			// delimiter, so there is nothing left to expect.
			return elements, trailing
		}
		if el := parseElement(next); el != nil {
			elements = append(elements, el)
		}
	}

	if p.peek().Kind == token.COMMENT {
		p.advance()
		c := &ast.SingleLineComment{Comment: p.cur().Value, Tok: p.cur()}
		if p.peek().Kind == close {
			trailing = c
			p.advance()
			return elements, trailing
		}
	}

	p.expect(close)
	return elements, trailing
}

func (p *Parser) parseExpressionListElement(leading ast.Comment) ast.Node {
	el := p.parseExpression(LOWEST, leading, false)
	p.absorbTrailingComment(el, false)
	return el
}

func (p *Parser) parseKeyValuePair(leading ast.Comment) ast.Node {
	tok := p.cur()
	key := p.parseExpression(LOWEST, leading, true)
	if key == nil {
		return nil
	}
	if !p.expect(token.COLON) {
		return nil
	}
	p.advance()
	value := p.parseExpression(LOWEST, nil, false)
	if value == nil {
		p.recordError(&Error{Kind: MapLiteralParseError, Pos: p.cur().Pos, Msg: "missing value after \":\""})
		return nil
	}
	return ast.NewKeyValueExpression(tok, key, value)
}

// --- expressions -----------------------------------------------------------

// parseExpression is the Pratt engine: resolve a prefix handler for the
// current token, then repeatedly extend it with infix handlers while their
// precedence exceeds minPrec. glueTrailing controls whether a trailing
// comment absorption glues further contiguous comments into one
// CommentGroup (used for map-literal keys; parameters glue their own
// trailing comments in parseParameter) or stops after the first (used
// everywhere else).
func (p *Parser) parseExpression(minPrec precedence, leading ast.Comment, glueTrailing bool) ast.Node {
	p.tracer.Enter("Expression")
	defer p.tracer.Exit("Expression")

	prefixFn, ok := p.prefix[p.cur().Kind]
	if !ok {
		p.recordError(&Error{Kind: MissingPrefixParseFunctionError, Pos: p.cur().Pos, Actual: p.cur().Kind})
		return nil
	}
	left := prefixFn()

	for left != nil && minPrec < precedenceOf(p.peek()) {
		infixFn, ok := p.infix[p.peek().Kind]
		if !ok {
			break
		}
		p.advance()
		left = infixFn(left)
	}

	// The leading comment belongs to the expression parseExpression is about
	// to return, not necessarily to the innermost prefix-parsed node: for
	// "# hdr\nx = 1" the comment attaches to the InfixExpression "x = 1" as a
	// whole, so attachment happens here, after any infix extension.
	if left != nil && leading != nil {
		ast.SetComments(left, ast.CommentMap{Leading: leading})
	}

	return p.absorbTrailingComment(left, glueTrailing)
}

func (p *Parser) parseIdentifier() ast.Node {
	return ast.NewIdentifier(p.cur())
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	tok := p.cur()
	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.recordError(&Error{Kind: IntegerParseError, Pos: tok.Pos, Value: tok.Value})
		return nil
	}
	return ast.NewIntegerLiteral(tok, v)
}

func (p *Parser) parseBooleanLiteral() ast.Node {
	tok := p.cur()
	return ast.NewBooleanLiteral(tok, tok.Kind == token.TRUE)
}

func (p *Parser) parseStringLiteral() ast.Node  { return ast.NewStringLiteral(p.cur()) }
func (p *Parser) parseFStringLiteral() ast.Node { return ast.NewFStringLiteral(p.cur()) }
func (p *Parser) parseRStringLiteral() ast.Node { return ast.NewRStringLiteral(p.cur()) }
func (p *Parser) parseBStringLiteral() ast.Node { return ast.NewBStringLiteral(p.cur()) }
func (p *Parser) parseUStringLiteral() ast.Node { return ast.NewUStringLiteral(p.cur()) }
func (p *Parser) parseDocStringLiteral() ast.Node {
	return ast.NewDocStringLiteral(p.cur())
}

func (p *Parser) parsePrefixExpression() ast.Node {
	tok := p.cur()
	p.advance()
	right := p.parseExpression(PREFIX, nil, false)
	return ast.NewPrefixExpression(tok, tok.Value, right)
}

func (p *Parser) parseInfixExpression(left ast.Node) ast.Node {
	tok := p.cur()
	prec := precedenceOf(tok)
	p.advance()
	right := p.parseExpression(prec, nil, false)
	return ast.NewInfixExpression(tok, left, tok.Value, right)
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.advance()
	expr := p.parseExpression(LOWEST, nil, false)
	p.expect(token.CLOSE_PAREN)
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Node {
	tok := p.cur()
	elements, trailing := p.parseCommaList(token.CLOSE_BRACKET, p.parseExpressionListElement)
	list := ast.NewExpressionList(tok, elements)
	ast.SetComments(list, ast.CommentMap{Trailing: trailing})
	return ast.NewArrayLiteral(tok, list)
}

func (p *Parser) parseMapLiteral() ast.Node {
	tok := p.cur()
	elements, trailing := p.parseCommaList(token.CLOSE_BRACE, p.parseKeyValuePair)

	pairs := make([]*ast.KeyValueExpression, 0, len(elements))
	for _, e := range elements {
		if kv, ok := e.(*ast.KeyValueExpression); ok {
			pairs = append(pairs, kv)
		}
	}
	list := ast.NewKeyValueExpressionList(tok, pairs)
	ast.SetComments(list, ast.CommentMap{Trailing: trailing})
	return ast.NewMapLiteral(tok, list)
}

func (p *Parser) parseCallExpression(callee ast.Node) ast.Node {
	tok := p.cur()
	elements, trailing := p.parseCommaList(token.CLOSE_PAREN, p.parseExpressionListElement)
	list := ast.NewExpressionList(tok, elements)
	ast.SetComments(list, ast.CommentMap{Trailing: trailing})
	return ast.NewCallExpression(tok, callee, list)
}

func (p *Parser) parseIndexExpression(left ast.Node) ast.Node {
	tok := p.cur()
	p.advance()
	index := p.parseExpression(LOWEST, nil, false)
	p.expect(token.CLOSE_BRACKET)
	return ast.NewIndexExpression(tok, left, index)
}

func (p *Parser) parseDotExpression(left ast.Node) ast.Node {
	tok := p.cur()
	if !p.expect(token.IDENT) {
		return ast.NewDotExpression(tok, left, nil)
	}
	return ast.NewDotExpression(tok, left, ast.NewIdentifier(p.cur()))
}
