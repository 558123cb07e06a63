package templater

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndNew(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NameRaw, func() Templater { return NewRawTemplater() })

	tpl, err := reg.New(NameRaw)
	require.NoError(t, err)
	assert.Equal(t, NameRaw, tpl.Name())
}

func TestRegistry_EmptyNameUsesDefault(t *testing.T) {
	reg := Builtin()

	tpl, err := reg.New("")
	require.NoError(t, err)
	assert.Equal(t, NameRaw, tpl.Name())
}

func TestRegistry_UnknownNameListsAvailable(t *testing.T) {
	reg := Builtin()

	_, err := reg.New("jinja")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"jinja"`)
	assert.Contains(t, err.Error(), "dataform, raw")
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{NameDataform, NameRaw}, Builtin().Names())
}

func TestRawTemplater_Identity(t *testing.T) {
	tpl := NewRawTemplater()

	result, err := tpl.Process(context.Background(), Request{
		Path:   "q.sql",
		Source: "SELECT 1\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1\n", result.Mapper.Templated())
	assert.False(t, result.Mapper.IsTemplated())
	assert.Empty(t, result.Warnings)
}

func TestSameKind(t *testing.T) {
	assert.True(t, SameKind(NewRawTemplater(), NewRawTemplater()))
	assert.False(t, SameKind(NewRawTemplater(), NewDataformTemplater()))
	assert.False(t, SameKind(NewRawTemplater(), nil))
	assert.True(t, SameKind(nil, nil))
}
