package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjstillabower/cicd-demo-service/internal/service"
	"github.com/kjstillabower/cicd-demo-service/internal/validation"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCalcCmd_Operations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "add", "2", "3"}, "5\n"},
		{[]string{"calc", "subtract", "5", "3"}, "2\n"},
		{[]string{"calc", "multiply", "4", "-3"}, "-12\n"},
		{[]string{"calc", "divide", "10", "2"}, "5.0\n"},
		{[]string{"calc", "divide", "-9", "4"}, "-2.25\n"},
	}
	for _, tc := range tests {
		t.Run(tc.args[1], func(t *testing.T) {
			out, err := runRoot(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCalcCmd_DivideByZero(t *testing.T) {
	out, err := runRoot(t, "calc", "divide", "10", "0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDivideByZero))
	assert.Contains(t, out, "Cannot divide by zero")
}

func TestCalcCmd_BadInput(t *testing.T) {
	_, err := runRoot(t, "calc", "add", "two", "3")
	assert.ErrorIs(t, err, validation.ErrOperandInvalid)

	_, err = runRoot(t, "calc", "power", "2", "3")
	assert.ErrorIs(t, err, service.ErrUnknownOperation)

	_, err = runRoot(t, "calc", "add", "2")
	assert.Error(t, err)
}

func TestCalcCmd_Help(t *testing.T) {
	out, err := runRoot(t, "calc", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Run one calculator operation")
}
