package shell_test

import (
	"testing"

	"github.com/jedevc/dwsh/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_BasicCommand(t *testing.T) {
	tokens, err := shell.Tokenize("echo hello world")
	require.NoError(t, err)

	var kinds []shell.TokenKind
	var lexemes []string
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
		lexemes = append(lexemes, tok.Lexeme)
	}

	assert.Equal(t, []shell.TokenKind{shell.WORD, shell.WORD, shell.WORD, shell.EOF}, kinds)
	assert.Equal(t, []string{"echo", "hello", "world", ""}, lexemes)
}

func TestTokenize_Operators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []shell.TokenKind
	}{
		{"redirect out", "cmd > file", []shell.TokenKind{shell.WORD, shell.REDIRECT_OUT, shell.WORD, shell.EOF}},
		{"redirect append", "cmd >> file", []shell.TokenKind{shell.WORD, shell.REDIRECT_APPEND, shell.WORD, shell.EOF}},
		{"redirect in", "cmd < file", []shell.TokenKind{shell.WORD, shell.REDIRECT_IN, shell.WORD, shell.EOF}},
		{"pipe", "a | b", []shell.TokenKind{shell.WORD, shell.PIPE, shell.WORD, shell.EOF}},
		{"command end", "a ; b", []shell.TokenKind{shell.WORD, shell.COMMAND_END, shell.WORD, shell.EOF}},
		{"no space around operators", "a>b", []shell.TokenKind{shell.WORD, shell.REDIRECT_OUT, shell.WORD, shell.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := shell.Tokenize(tt.input)
			require.NoError(t, err)
			var kinds []shell.TokenKind
			for _, tok := range tokens {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestTokenize_QuotedWords(t *testing.T) {
	tokens, err := shell.Tokenize(`echo 'hello world' "a;b|c"`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "echo", tokens[0].Lexeme)
	assert.Equal(t, "hello world", tokens[1].Lexeme)
	assert.Equal(t, "a;b|c", tokens[2].Lexeme)
	assert.Equal(t, shell.EOF, tokens[3].Kind)
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	_, err := shell.Tokenize(`echo "unterminated`)
	assert.Error(t, err)
}

func TestTokenize_AdjacentQuotedRunsStaySeparateWords(t *testing.T) {
	tokens, err := shell.Tokenize(`"a"b`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, "b", tokens[1].Lexeme)
	assert.Equal(t, shell.EOF, tokens[2].Kind)
}

func TestTokenize_ControlCharacterIsUnknown(t *testing.T) {
	tokens, err := shell.Tokenize("echo \x01")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, shell.UNKNOWN, tokens[1].Kind)
	assert.Equal(t, "\x01", tokens[1].Lexeme)
}

func TestTokenize_EmptyLine(t *testing.T) {
	tokens, err := shell.Tokenize("   ")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, shell.EOF, tokens[0].Kind)
}
