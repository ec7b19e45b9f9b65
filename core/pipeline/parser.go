package pipeline

import (
	"strings"
	"unicode"
)

// Grammar, ASCII and whitespace significant:
//
//	line      := statement (";" statement)*
//	statement := stage ("|" stage)*
//	stage     := word (whitespace word)*
//
// Quoting, escaping, expansion and redirection are not part of this layer.

// TokenKind distinguishes words from operators.
type TokenKind int

const (
	// Word is a command name or argument.
	Word TokenKind = iota
	// StatementSeparator is the ";" operator.
	StatementSeparator
	// PipeSeparator is the "|" operator.
	PipeSeparator
)

// Token is a single lexical element of a line.
type Token struct {
	Kind TokenKind
	Text string
}

// Stage is one executable invocation within a pipeline.
type Stage struct {
	// Name of the executable as typed.
	Name string
	// Args holds the arguments, not including Name.
	Args []string
}

// Argv returns the full argument vector with the name as the first element.
func (s Stage) Argv() []string {
	return append([]string{s.Name}, s.Args...)
}

func (s Stage) String() string {
	return strings.Join(s.Argv(), " ")
}

// Statement is a pipeline of zero or more stages.
type Statement struct {
	// Text is the statement's tokens joined by single spaces.
	Text   string
	Stages []Stage
}

// Empty is true if the statement has nothing to run.
func (s Statement) Empty() bool {
	return len(s.Stages) == 0
}

// Tokenize splits a line into words and the ";" and "|" operators.
// Operators are recognized with or without surrounding whitespace.
func Tokenize(line string) []Token {
	var tokens []Token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, Token{Kind: Word, Text: word.String()})
			word.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == ';':
			flush()
			tokens = append(tokens, Token{Kind: StatementSeparator, Text: ";"})
		case r == '|':
			flush()
			tokens = append(tokens, Token{Kind: PipeSeparator, Text: "|"})
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Parse splits a line into statements and each statement into stages.
//
// A line with k statement separators always yields k+1 statements, some of
// which may be empty.
func Parse(line string) []Statement {
	return ParseTokens(Tokenize(line))
}

// ParseTokens runs both parsing passes over an already tokenized line. The
// token slice is not modified.
func ParseTokens(tokens []Token) []Statement {
	var out []Statement
	for _, group := range splitStatements(tokens) {
		out = append(out, splitStages(group))
	}
	return out
}

// ParseStatement parses text as a single statement, only "|" separates.
// Any other operator token is kept as a literal word.
func ParseStatement(text string) Statement {
	return splitStages(Tokenize(text))
}

// splitStatements is the first pass, it splits on ";".
func splitStatements(tokens []Token) [][]Token {
	groups := [][]Token{nil}
	for _, tok := range tokens {
		if tok.Kind == StatementSeparator {
			groups = append(groups, nil)
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], tok)
	}
	return groups
}

// splitStages is the second pass, it splits a statement's tokens on "|" and
// drops stages with no words.
func splitStages(tokens []Token) Statement {
	var stmt Statement
	var words []string

	flush := func() {
		if len(words) == 0 {
			return
		}
		stage := Stage{Name: words[0]}
		if len(words) > 1 {
			stage.Args = words[1:]
		}
		stmt.Stages = append(stmt.Stages, stage)
		words = nil
	}

	for _, tok := range tokens {
		if tok.Kind == PipeSeparator {
			flush()
			continue
		}
		words = append(words, tok.Text)
	}
	flush()

	var texts []string
	for _, stage := range stmt.Stages {
		texts = append(texts, stage.String())
	}
	stmt.Text = strings.Join(texts, " | ")

	return stmt
}
