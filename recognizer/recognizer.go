package recognizer

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/GDVFox/zigzin/automaton"
)

// LexicalError ошибка лексического анализа: начиная с позиции (Line, Pos)
// не удалось выделить ни одной лексемы. Char первый символ, по которому
// не нашлось допускающего пути.
type LexicalError struct {
	Line int
	Pos  int
	Char rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unexpected character %q (%d %d)", e.Char, e.Line, e.Pos)
}

// LexicalRecognizer конечный автомат, который выделяет токены в тексте.
// Лексемы выбираются по принципу наибольшего совпадения: из всех префиксов,
// приводящих в допускающее состояние, берется самый длинный.
// Пробельные символы между лексемами пропускаются и токенов не порождают.
type LexicalRecognizer struct {
	dfa *automaton.DFA

	text  string
	index int
	line  int
	pos   int
}

// NewLexicalRecognizer создает LexicalRecognizer над текстом text.
func NewLexicalRecognizer(dfa *automaton.DFA, text string) *LexicalRecognizer {
	return &LexicalRecognizer{
		dfa:   dfa,
		text:  text,
		index: 0,
		line:  1,
		pos:   1,
	}
}

// NextToken возвращает следующий токен.
// На конце текста возвращается io.EOF, при невозможности выделить
// лексему LexicalError с координатами отказа.
func (l *LexicalRecognizer) NextToken() (*Token, error) {
	l.skipWhitespace()
	if l.index == len(l.text) {
		return nil, io.EOF
	}

	starting := Position{Line: l.line, Pos: l.pos, Index: l.index}
	current := starting
	state := l.dfa.Start

	// Запоминается самая дальняя допускающая позиция, а не первая:
	// после остановки автомата разбор откатывается к ней.
	accepted := false
	var acceptedDomain string
	var acceptedEnd Position

	for current.Index != len(l.text) {
		symbol, size := utf8.DecodeRuneInString(l.text[current.Index:])
		nextState, ok := l.dfa.Next(state, symbol)
		if !ok {
			break
		}

		state = nextState
		if symbol == '\n' {
			current.Line++
			current.Pos = 1
		} else {
			current.Pos++
		}
		current.Index += size

		if domain, ok := l.dfa.Accept[state]; ok {
			accepted = true
			acceptedDomain = domain
			acceptedEnd = current
		}
	}

	if !accepted {
		symbol, _ := utf8.DecodeRuneInString(l.text[l.index:])
		return nil, &LexicalError{Line: l.line, Pos: l.pos, Char: symbol}
	}

	token := &Token{
		Domain: acceptedDomain,
		Lexeme: l.text[starting.Index:acceptedEnd.Index],
		Coords: Fragment{Starting: starting, Ending: acceptedEnd},
	}

	l.index = acceptedEnd.Index
	l.line = acceptedEnd.Line
	l.pos = acceptedEnd.Pos
	return token, nil
}

func (l *LexicalRecognizer) skipWhitespace() {
	for l.index != len(l.text) {
		symbol, size := utf8.DecodeRuneInString(l.text[l.index:])
		if !unicode.IsSpace(symbol) {
			return
		}

		if symbol == '\n' {
			l.line++
			l.pos = 1
		} else {
			l.pos++
		}
		l.index += size
	}
}

// Tokenize возвращает все токены text в порядке их появления.
// При лексической ошибке частичный список токенов не возвращается.
func Tokenize(dfa *automaton.DFA, text string) ([]*Token, error) {
	recognizer := NewLexicalRecognizer(dfa, text)

	var tokens []*Token
	for {
		token, err := recognizer.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}
