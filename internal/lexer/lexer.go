// Package lexer provides a Lexer that converts sl source code into tokens.
//
// The lexer exposes a two-step interface: Peek returns the next token without
// consuming it and Commit consumes exactly the bytes of the peeked token. Next
// combines the two.
package lexer

import (
	"regexp"
	"strings"

	"github.com/sl-lang/sl/internal/token"
)

// matcher pairs an anchored pattern with the token type it produces.
type matcher struct {
	re  *regexp.Regexp
	typ token.Type
}

// matchers are tried in order and the first match wins. Literals come first,
// then keywords, then number shapes, then identifiers, then operators. An
// identifier pattern tried before the keywords would swallow them.
var matchers = buildMatchers()

func buildMatchers() []matcher {
	ms := []matcher{
		{regexp.MustCompile(`^"[^"]*"`), token.STRING},
		{regexp.MustCompile(`^'.'`), token.CHAR},
	}
	for _, kw := range token.Keywords() {
		ms = append(ms, matcher{
			re:  regexp.MustCompile(`^` + kw + `\b`),
			typ: token.LookupIdentifier(kw),
		})
	}
	ms = append(ms,
		matcher{regexp.MustCompile(`^->`), token.ARROW},
		matcher{regexp.MustCompile(`^0x[0-9a-fA-F]+`), token.HEX},
		matcher{regexp.MustCompile(`^[0-9]+\.[0-9]+`), token.FLOAT},
		matcher{regexp.MustCompile(`^[0-9]+`), token.INT},
		matcher{regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), token.IDENT},
		matcher{regexp.MustCompile(`^\|\|`), token.OR},
		matcher{regexp.MustCompile(`^&&`), token.AND},
		matcher{regexp.MustCompile(`^>=`), token.GT_EQUALS},
		matcher{regexp.MustCompile(`^<=`), token.LT_EQUALS},
		matcher{regexp.MustCompile(`^==`), token.EQ},
	)
	return ms
}

var singleChars = map[byte]token.Type{
	'|':  token.BITOR,
	'&':  token.AMPERSAND,
	'>':  token.GT,
	'<':  token.LT,
	':':  token.COLON,
	',':  token.COMMA,
	'.':  token.PERIOD,
	';':  token.SEMICOLON,
	'(':  token.LPAREN,
	')':  token.RPAREN,
	'[':  token.LBRACKET,
	']':  token.RBRACKET,
	'{':  token.LBRACE,
	'}':  token.RBRACE,
	'-':  token.MINUS,
	'+':  token.PLUS,
	'*':  token.ASTERISK,
	'/':  token.SLASH,
	'%':  token.MOD,
	'=':  token.ASSIGN,
	'\'': token.SQUOTE,
	'"':  token.DQUOTE,
}

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFilename sets the file name for the Lexer.
func WithFilename(filename string) Option {
	return func(l *Lexer) {
		l.file = filename
	}
}

// Lexer holds our object-state.
type Lexer struct {
	input string

	// position of the cursor as a byte offset into input
	pos int

	// 0-indexed line of the cursor and byte offset where that line starts
	line      int
	lineStart int

	// the token returned by the last Peek, valid until Commit
	peeked    token.Token
	hasPeeked bool

	file  string
	lines []string
}

// New creates a Lexer instance from the given string
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// SetFilename sets the filename attached to token positions.
func (l *Lexer) SetFilename(filename string) {
	l.file = filename
}

// Filename returns the filename attached to token positions.
func (l *Lexer) Filename() string {
	return l.file
}

// Peek returns the next token without consuming it. Repeated calls return the
// same token until Commit is called.
func (l *Lexer) Peek() token.Token {
	if l.hasPeeked {
		return l.peeked
	}
	l.skipWhitespaceAndComments()
	start := l.position()
	if l.pos >= len(l.input) {
		l.peeked = token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}
		l.hasPeeked = true
		return l.peeked
	}
	typ, literal := l.match(l.input[l.pos:])
	l.peeked = token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   endOf(start, literal),
	}
	l.hasPeeked = true
	return l.peeked
}

// Commit consumes the bytes of the most recently peeked token.
func (l *Lexer) Commit() {
	tok := l.Peek()
	l.hasPeeked = false
	if tok.Type == token.EOF {
		return
	}
	l.advance(len(tok.Literal))
}

// Next returns the next token and consumes it.
func (l *Lexer) Next() token.Token {
	tok := l.Peek()
	l.Commit()
	return tok
}

// Tokens drains the lexer, returning every token up to and including EOF.
func (l *Lexer) Tokens() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// LineText returns the text of the given 1-indexed line, without the
// trailing newline. An empty string is returned for out of range lines.
func (l *Lexer) LineText(line int) string {
	if l.lines == nil {
		l.lines = strings.Split(l.input, "\n")
	}
	if line < 1 || line > len(l.lines) {
		return ""
	}
	return strings.TrimRight(l.lines[line-1], "\r")
}

func (l *Lexer) match(rest string) (token.Type, string) {
	for _, m := range matchers {
		if loc := m.re.FindStringIndex(rest); loc != nil {
			return m.typ, rest[:loc[1]]
		}
	}
	if typ, ok := singleChars[rest[0]]; ok {
		return typ, rest[:1]
	}
	// Consume a whole rune so multi-byte input yields a single token.
	for i := range rest {
		if i > 0 {
			return token.UNKNOWN, rest[:i]
		}
	}
	return token.UNKNOWN, rest
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f':
			l.advance(1)
		case strings.HasPrefix(l.input[l.pos:], "//"):
			end := strings.IndexByte(l.input[l.pos:], '\n')
			if end < 0 {
				l.advance(len(l.input) - l.pos)
			} else {
				l.advance(end + 1)
			}
		default:
			return
		}
	}
}

// advance moves the cursor n bytes forward, tracking line starts.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}
		l.pos++
	}
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.file,
	}
}

// endOf computes the position immediately after literal, which may span lines.
func endOf(start token.Position, literal string) token.Position {
	end := start
	for i := 0; i < len(literal); i++ {
		end.Char++
		if literal[i] == '\n' {
			end.Line++
			end.LineStart = end.Char
			end.Column = 0
		} else {
			end.Column++
		}
	}
	return end
}
