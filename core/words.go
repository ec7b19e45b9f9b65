package core

import (
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/yarp-sh/yarp/core/pipeline"
)

// splitLine turns a typed line into pipeline tokens. Unquoted ";" and "|"
// become operators, the text between them is split into words with POSIX
// shell quoting so the executor only ever sees unquoted arguments.
func splitLine(line string) ([]pipeline.Token, error) {
	var tokens []pipeline.Token
	var segment strings.Builder

	flush := func() error {
		words, err := shlex.Split(segment.String(), true)
		if err != nil {
			return err
		}
		for _, word := range words {
			tokens = append(tokens, pipeline.Token{Kind: pipeline.Word, Text: word})
		}
		segment.Reset()
		return nil
	}

	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ';' || r == '|':
			if err := flush(); err != nil {
				return nil, err
			}
			kind := pipeline.StatementSeparator
			if r == '|' {
				kind = pipeline.PipeSeparator
			}
			tokens = append(tokens, pipeline.Token{Kind: kind, Text: string(r)})
			continue
		}
		segment.WriteRune(r)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}
