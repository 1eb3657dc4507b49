package debian

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = `Package: foo
Depends: bar (>= 2.0), baz

Package: bar
Depends: qux

Package: baz
Version: 1.0
`

func TestNewIndex(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	idx := NewIndex(ctx, "./Packages", testIndex)
	assert.EqualValues(t, 3, idx.Count())
	assert.EqualValues(t, "./Packages", idx.Source())

	r, err := idx.Get("baz")
	require.NoError(t, err)
	assert.EqualValues(t, "1.0", r["Version"])
}

func TestIndex_GetDependencies(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	idx := NewIndex(ctx, "", testIndex)

	var cases = []struct {
		name string
		out  []string
		ok   bool
	}{
		{
			"foo",
			[]string{"bar", "baz"},
			true,
		},
		{
			"bar",
			[]string{"qux"},
			true,
		},
		{
			"baz",
			[]string{},
			true,
		},
		{
			"zzz",
			nil,
			false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := idx.GetDependencies(ctx, tt.name)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.out, out)
		})
	}
}
