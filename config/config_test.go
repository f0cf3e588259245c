package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/errs"
	"github.com/sqlfmtgo/sqlfmt/format"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".sqlfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "tabWdith: 4\n")
	_, err := Load(path)
	require.Error(t, err)
	var cfgErr errs.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadAcceptsKnownKeys(t *testing.T) {
	path := writeConfig(t, "tabWidth: 4\nkeywordCase: upper\n")
	fc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, fc.TabWidth)
	assert.Equal(t, "upper", fc.KeywordCase)
}

func TestOptionsWiresNewlineBeforeParens(t *testing.T) {
	fc := FileConfig{NewlineBeforeOpenParen: true, NewlineBeforeCloseParen: true}
	opts, err := fc.Options()
	require.NoError(t, err)
	o, err := format.NewOptions(opts...)
	require.NoError(t, err)
	assert.True(t, o.NewlineBeforeOpenParen)
	assert.True(t, o.NewlineBeforeCloseParen)
}
