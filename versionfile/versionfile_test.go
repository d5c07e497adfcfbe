package versionfile_test

import (
	"testing"

	"github.com/habedi/tf2cu/versionfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want versionfile.Version
	}{
		{"two lines", "VersionName=A\nVersionTime=B", versionfile.Version{Name: "A", Time: "B"}},
		{"crlf endings", "VersionName=2.1.4\r\nVersionTime=1700000000\r\n", versionfile.Version{Name: "2.1.4", Time: "1700000000"}},
		{"extra keys and blank lines", "\nFoo=bar\n\nVersionTime=t\nVersionName=n\n", versionfile.Version{Name: "n", Time: "t"}},
		{"empty values accepted", "VersionName=\nVersionTime=", versionfile.Version{}},
		{"value keeps later separators", "VersionName=a=b\nVersionTime=c", versionfile.Version{Name: "a=b", Time: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := versionfile.ParseVersion(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	kv, err := versionfile.Parse("VersionName=old\nVersionName=new")
	require.NoError(t, err)
	assert.Equal(t, "new", kv["VersionName"])
	assert.Len(t, kv, 1)
}

func TestParse_LineWithoutSeparator(t *testing.T) {
	_, err := versionfile.Parse("VersionName=A\ngarbage\nVersionTime=B")
	require.Error(t, err)
	assert.ErrorIs(t, err, versionfile.ErrParse)

	var pe *versionfile.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "garbage", pe.Text)
}

func TestToVersion_MissingKey(t *testing.T) {
	tests := []struct {
		name    string
		kv      map[string]string
		missing string
	}{
		{"no name", map[string]string{"VersionTime": "B"}, versionfile.KeyName},
		{"no time", map[string]string{"VersionName": "A"}, versionfile.KeyTime},
		{"empty map", map[string]string{}, versionfile.KeyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := versionfile.ToVersion(tt.kv)
			assert.ErrorIs(t, err, versionfile.ErrParse)
			assert.Equal(t, versionfile.Version{}, v, "must not return partial data")

			var pe *versionfile.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.missing, pe.Missing)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	kv, err := versionfile.Parse("")
	require.NoError(t, err)
	assert.Empty(t, kv)

	_, err = versionfile.ParseVersion("")
	assert.ErrorIs(t, err, versionfile.ErrParse)
}
