package properties

import (
	"testing"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		existing types.PropertyMap
		set      []string
		remove   []string
		expected types.PropertyMap
	}{
		{
			name:     "set and remove",
			existing: types.PropertyMap{"a": "1", "b": "2"},
			set:      []string{"a=9", "c=3"},
			remove:   []string{"b"},
			expected: types.PropertyMap{"a": "9", "c": "3"},
		},
		{
			name:     "removal wins over set",
			existing: types.PropertyMap{"a": "1"},
			set:      []string{"k=v"},
			remove:   []string{"k"},
			expected: types.PropertyMap{"a": "1"},
		},
		{
			name:     "removing an absent key",
			existing: types.PropertyMap{"a": "1"},
			remove:   []string{"zz"},
			expected: types.PropertyMap{"a": "1"},
		},
		{
			name:     "last write wins",
			set:      []string{"k=1", "k=2"},
			expected: types.PropertyMap{"k": "2"},
		},
		{
			name:     "split on the first equals sign",
			set:      []string{"url=jdbc:x?a=b", "empty="},
			expected: types.PropertyMap{"url": "jdbc:x?a=b", "empty": ""},
		},
		{
			name:     "nothing to apply",
			existing: types.PropertyMap{"a": "1", "b": "2"},
			expected: types.PropertyMap{"a": "1", "b": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ves := Resolve(tt.existing, tt.set, tt.remove)
			require.Nil(t, ves)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestResolve_DoesNotModifySnapshot(t *testing.T) {
	existing := types.PropertyMap{"a": "1", "b": "2"}
	_, ves := Resolve(existing, []string{"a=2", "c=3"}, []string{"b"})
	require.Nil(t, ves)
	assert.Equal(t, types.PropertyMap{"a": "1", "b": "2"}, existing)
}

func TestResolve_OrderIndependentWithinPhase(t *testing.T) {
	existing := types.PropertyMap{"a": "1", "b": "2", "c": "3"}
	first, _ := Resolve(existing, []string{"x=1", "y=2", "a=0"}, []string{"b", "c", "y"})
	second, _ := Resolve(existing, []string{"a=0", "y=2", "x=1"}, []string{"y", "c", "b"})
	assert.True(t, first.Equal(second))
	assert.Equal(t, types.PropertyMap{"a": "0", "x": "1"}, first)
}

func TestResolve_Malformed(t *testing.T) {
	props, ves := Resolve(types.PropertyMap{"a": "1"}, []string{"good=1", "bad", "=v"}, nil)
	assert.Nil(t, props)
	require.Len(t, ves, 2)
	for _, ve := range ves {
		assert.Equal(t, types.ArgSetProperty, ve.Field)
		assert.Equal(t, schemaerr.KindMalformedProperty, ve.Kind)
	}
	assert.Equal(t, "bad", ves[0].Value)
	assert.Equal(t, "=v", ves[1].Value)
}

func TestParse(t *testing.T) {
	props, ves := Parse(types.ArgProperty, []string{"owner=etl", "tier=gold"})
	require.Nil(t, ves)
	assert.Equal(t, types.PropertyMap{"owner": "etl", "tier": "gold"}, props)

	props, ves = Parse(types.ArgProperty, nil)
	require.Nil(t, ves)
	assert.Empty(t, props)

	_, ves = Parse(types.ArgProperty, []string{"novalue"})
	require.Len(t, ves, 1)
	assert.Equal(t, types.ArgProperty, ves[0].Field)
}
