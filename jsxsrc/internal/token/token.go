package token

import (
	"unicode"
)

type Type int

const (
	LParen Type = iota
	RParen
	Ident
	String
	Number
	Illegal
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	case Illegal:
		return "illegal token"
	}
	return "unknown"
}

// Token is one lexeme. String tokens hold the raw text between the quotes
// with escapes left in place.
type Token struct {
	Value string
	Type  Type
	Line  int
	Col   int
}

// Tokenize splits input into tokens. Lexical errors (an unterminated
// string, a stray character) become Illegal tokens for the parser to
// report.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	lineStart := 0
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		col := i - lineStart + 1

		if r == '\n' {
			line++
			lineStart = i + 1
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == ';' && i+1 < len(runes) && runes[i+1] == ';' {
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
			continue
		}

		if r == '(' {
			tokens = append(tokens, Token{"(", LParen, line, col})
			continue
		}
		if r == ')' {
			tokens = append(tokens, Token{")", RParen, line, col})
			continue
		}

		if r == '"' {
			start := i + 1
			i++
			for i < len(runes) && runes[i] != '"' && runes[i] != '\n' {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			if i >= len(runes) || runes[i] != '"' {
				tokens = append(tokens, Token{"unterminated string", Illegal, line, col})
				i--
				continue
			}
			tokens = append(tokens, Token{string(runes[start:i]), String, line, col})
			continue
		}

		if unicode.IsDigit(r) || (r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])) {
			start := i
			i++
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.' || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line, col})
			i--
			continue
		}

		// Identifier, possibly dotted
		if unicode.IsLetter(r) || r == '_' {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line, col})
			i--
			continue
		}

		tokens = append(tokens, Token{string(r), Illegal, line, col})
	}

	return tokens
}
