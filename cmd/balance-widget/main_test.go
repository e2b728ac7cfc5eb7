package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_Defaults(t *testing.T) {
	out, err := execute(t, "render", "--ids", "2,1")

	require.NoError(t, err)
	assert.Equal(t,
		"widget 1 [balance_widget]\n  widget_balance: $0\n  widget_updated: Actualizado: Sin datos\n"+
			"widget 2 [balance_widget]\n  widget_balance: $0\n  widget_updated: Actualizado: Sin datos\n",
		out)
}

func TestRender_SetValues(t *testing.T) {
	out, err := execute(t, "render", "--set", "balance=$3.400.000", "--set", "updated=hoy 8:15")

	require.NoError(t, err)
	assert.Contains(t, out, "widget_balance: $3.400.000")
	assert.Contains(t, out, "widget_updated: Actualizado: hoy 8:15")
}

func TestRender_BadInput(t *testing.T) {
	_, err := execute(t, "render", "--source", "redis")
	assert.ErrorContains(t, err, "unknown source")

	_, err = execute(t, "render", "--set", "balance")
	assert.ErrorContains(t, err, "invalid assignment")

	_, err = execute(t, "render", "--source", "postgres", "--set", "balance=1")
	assert.ErrorContains(t, err, "--set only applies")
}
