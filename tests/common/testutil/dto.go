//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap converts a request DTO to a JSON map, then applies mutations. Lets a
// test start from a valid payload and break exactly one field.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal dto: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("failed to unmarshal dto: %v", err)
	}
	for _, f := range muts {
		f(m)
	}
	return m
}
