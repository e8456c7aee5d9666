//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can mutate the wire form field by field.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// DtoSlice is DtoMap for request bodies that are JSON arrays.
func DtoSlice(t *testing.T, v any, muts ...func(map[string]any)) []map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var s []map[string]any
	require.NoError(t, json.Unmarshal(b, &s))
	for _, m := range s {
		for _, f := range muts {
			f(m)
		}
	}
	return s
}
