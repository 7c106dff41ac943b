package command

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "newline terminated", input: "s3cret\nignored", want: "s3cret"},
		{name: "eof terminated", input: "s3cret", want: "s3cret"},
		{name: "carriage return dropped", input: "s3cret\r\n", want: "s3cret"},
		{name: "backspace", input: "s3cx\bret\n", want: "s3cret"},
		{name: "empty line", input: "\n", want: ""},
		{name: "no input", input: "", wantErr: io.EOF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := readLine(strings.NewReader(test.input))
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, string(got))
		})
	}
}

func TestReadPassword_NotTerminal(t *testing.T) {
	t.Parallel()

	var prompt bytes.Buffer
	got, err := readPassword(strings.NewReader("s3cret\n"), &prompt)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(got))
	assert.Empty(t, prompt.String(), "no prompt is written for piped input")
}

func TestReadPassword_StripsBOM(t *testing.T) {
	t.Parallel()

	got, err := readPassword(strings.NewReader("\xEF\xBB\xBFs3cret\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(got))
}

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, version())
}
