package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/adapters/console"
)

func tty(v bool) func() bool {
	return func() bool { return v }
}

func TestConsenter_Yes(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "yes\n", "  YES  \n"} {
		var out bytes.Buffer
		c := console.NewConsenterFor(strings.NewReader(answer), &out, tty(true))
		ok, err := c.Confirm("Install laravel/pint?")
		require.NoError(t, err)
		require.True(t, ok, "answer %q", answer)
		require.Contains(t, out.String(), "Install laravel/pint?")
	}
}

func TestConsenter_DefaultIsNo(t *testing.T) {
	for _, answer := range []string{"\n", "n\n", "no\n", "whatever\n", ""} {
		var out bytes.Buffer
		c := console.NewConsenterFor(strings.NewReader(answer), &out, tty(true))
		ok, err := c.Confirm("Install laravel/pint?")
		require.NoError(t, err)
		require.False(t, ok, "answer %q", answer)
	}
}

func TestConsenter_NonInteractiveNeverAsks(t *testing.T) {
	var out bytes.Buffer
	c := console.NewConsenterFor(strings.NewReader("y\n"), &out, tty(false))
	ok, err := c.Confirm("Install laravel/pint?")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, out.String(), "no prompt may be written without a terminal")
}
