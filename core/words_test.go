package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yarp-sh/yarp/core/pipeline"
)

func TestSplitLine(t *testing.T) {
	word := func(text string) pipeline.Token {
		return pipeline.Token{Kind: pipeline.Word, Text: text}
	}
	pipe := pipeline.Token{Kind: pipeline.PipeSeparator, Text: "|"}
	semi := pipeline.Token{Kind: pipeline.StatementSeparator, Text: ";"}

	cases := map[string]struct {
		line     string
		expected []pipeline.Token
	}{
		"plain": {
			line:     "echo hi",
			expected: []pipeline.Token{word("echo"), word("hi")},
		},
		"double-quotes": {
			line:     `grep "foo bar" f`,
			expected: []pipeline.Token{word("grep"), word("foo bar"), word("f")},
		},
		"single-quotes-are-literal": {
			line:     `printf '%s\n' "x y"`,
			expected: []pipeline.Token{word("printf"), word(`%s\n`), word("x y")},
		},
		"operators-without-spaces": {
			line:     "a|b;c",
			expected: []pipeline.Token{word("a"), pipe, word("b"), semi, word("c")},
		},
		"quoted-operators": {
			line:     `echo 'a;b' "c|d"`,
			expected: []pipeline.Token{word("echo"), word("a;b"), word("c|d")},
		},
		"escaped-operator": {
			line:     `echo a\;b`,
			expected: []pipeline.Token{word("echo"), word("a;b")},
		},
		"escaped-quote": {
			line:     `echo "say \"hi\"" | cat`,
			expected: []pipeline.Token{word("echo"), word(`say "hi"`), pipe, word("cat")},
		},
		"joined-quotes": {
			line:     `echo a"b c"d`,
			expected: []pipeline.Token{word("echo"), word("ab cd")},
		},
		"empty-statements": {
			line:     " ; ;",
			expected: []pipeline.Token{semi, semi},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens, err := splitLine(tc.line)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestSplitLine_Errors(t *testing.T) {
	for _, line := range []string{
		`echo "unterminated`,
		`echo 'a; b | c`,
		`echo trailing\`,
	} {
		t.Run(line, func(t *testing.T) {
			_, err := splitLine(line)
			assert.Error(t, err)
		})
	}
}
