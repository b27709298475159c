package parser

import "github.com/samfolo/autodep/token"

// precedence is the Pratt parser's precedence ladder, low to high.
type precedence int

const (
	LOWEST precedence = iota
	EQ
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	MEMBER
	CALL
	INDEX
)

// precedenceByLexeme maps a token's lexeme (not its kind — spec.md §4.2 is
// explicit about this, since e.g. "-" as PREFIX and "-" as the SUM infix
// operator share a kind but the table here only concerns infix lookup) to
// its infix binding power. The spec's table lists one representative lexeme
// per named bucket (the bucket name is LESSGREATER, so "<" "<=" ">" ">="
// belong there; ASSIGN is documented separately as an infix operator, and
// `x = 1` parsing as a top-level InfixExpression requires it bind above
// LOWEST, so it shares EQ's level with "=="). Lexemes absent from the table
// bind at LOWEST.
var precedenceByLexeme = map[string]precedence{
	"==": EQ,
	"!=": EQ,
	"=":  EQ,
	"<":  LESSGREATER,
	">":  LESSGREATER,
	"<=": LESSGREATER,
	">=": LESSGREATER,
	"+":  SUM,
	"-":  SUM,
	"/":  PRODUCT,
	"*":  PRODUCT,
	"%":  PRODUCT,
	".":  MEMBER,
	"(":  CALL,
	"[":  INDEX,
}

func precedenceOf(tok token.Token) precedence {
	if p, ok := precedenceByLexeme[tok.Value]; ok {
		return p
	}
	return LOWEST
}
