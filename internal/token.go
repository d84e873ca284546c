package internal

// tokenType identifies the lexical kind of a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), [, ], {, }, ., ',', :, ;, +, -, *, /, #
	tkLeftParen
	tkRightParen
	tkLeftBracket
	tkRightBracket
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkDot
	tkComma
	tkColon
	tkSemicolon
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkHash

	// One or two character tokens.
	// //, <=, =, ><, <, =<, >, >=
	tkDoubleSlash
	tkAssign
	tkEqual
	tkUnequal
	tkLess
	tkLessEqual
	tkGreater
	tkGreaterEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// y, o, no, definir, clase, instancia, base, verdadero,
	// falso, si, sino, repetir, mientras, devolver
	tkY
	tkO
	tkNo
	tkDefinir
	tkClase
	tkInstancia
	tkBase
	tkVerdadero
	tkFalso
	tkSi
	tkSino
	tkRepetir
	tkMientras
	tkDevolver
)

// token is immutable once emitted by the lexer. The lexeme is always
// the exact substring of the source that produced the token.
type token struct {
	token   tokenType
	lexeme  string
	literal value
	line    int
}
