package lexer

import (
	"github.com/photon-lang/photon/internal/arena"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/source"
	"github.com/photon-lang/photon/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	strs   *arena.Arena   // владеет декодированными телами string/char литералов
	stats  Statistics
}

// Statistics reports counters accumulated across a lexer's Next() calls,
// for tooling that wants to report how much work a lexing pass did without
// re-scanning the file.
type Statistics struct {
	TokensProduced int
	BytesScanned   int
}

// maxTokenLength caps the byte length of a single token; a longer token is
// reported as LexTokenTooLong and returned as Invalid.
const maxTokenLength = 1 << 16

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
		strs:   arena.New(0),
	}
}

// StringArena exposes the arena backing decoded string/char literal
// payloads, so callers can Reset it between independent lexing passes.
func (lx *Lexer) StringArena() *arena.Arena { return lx.strs }

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) collectLeadingTrivia() — набить lx.hold
	lx.collectLeadingTrivia()

	// 3) Если EOF → вернуть EOF (Leading из hold не приклеиваем к EOF)
	if lx.cursor.EOF() {
		lx.stats.TokensProduced++
		lx.stats.BytesScanned = int(lx.cursor.Off)
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '_':
		// Специальная обработка для underscore: если следующий символ не продолжение идента, то это токен Underscore
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			// "__foo" или "_123" → идентификатор
			tok = lx.scanIdentOrKeyword()
		} else {
			// одиночный "_" → токен Underscore
			tok = lx.scanOperatorOrPunct()
		}

	case isIdentStartByte(ch):
		// ASCII буква → scanIdentOrKeyword()
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		// цифра → scanNumber()
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		// . за которым цифра → scanNumber()
		tok = lx.scanNumber()

	case ch == '"':
		// " → scanString()
		tok = lx.scanString()

	case ch == '\'':
		// ' → scanChar()
		tok = lx.scanChar()

	default:
		// иначе → scanOperatorOrPunct() (включая @, скобки, запятые и т.д.)
		tok = lx.scanOperatorOrPunct()
	}

	// 5) В полученный token.Token положить Leading: lx.hold, обнулить hold
	tok.Leading = lx.hold
	lx.hold = nil

	if tok.Span.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token too long")
		tok.Kind = token.Invalid
		tok.Payload = token.Payload{}
	}

	lx.stats.TokensProduced++
	lx.stats.BytesScanned = int(lx.cursor.Off)

	// 6) Вернуть токен
	return tok
}

// Statistics reports counters accumulated since construction or the last
// ResetStatistics call.
func (lx *Lexer) Statistics() Statistics { return lx.stats }

// ResetStatistics zeroes the lexer's accumulated counters without affecting
// its scanning position.
func (lx *Lexer) ResetStatistics() { lx.stats = Statistics{} }

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// EmptySpan exposes a zero-length span at the lexer's current position,
// used by the parser to seed spans before any token has been consumed.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}
