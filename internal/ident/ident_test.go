package ident_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/ident"
)

func TestUUIDGeneratesDistinctIDs(t *testing.T) {
	const n = 1000
	gen := ident.UUID{}

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := gen.NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n)
}

func TestGeneratorFunc(t *testing.T) {
	calls := 0
	gen := ident.GeneratorFunc(func() string {
		calls++
		return "fixed"
	})

	assert.Equal(t, "fixed", gen.NewID())
	assert.Equal(t, 1, calls)
}
