//go:build unit

package stale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudget_Consume(t *testing.T) {
	budget := NewBudget(5)

	assert.Equal(t, 5, budget.Remaining())
	assert.False(t, budget.Exhausted())

	budget.Consume(2)
	assert.Equal(t, 3, budget.Remaining())
	assert.False(t, budget.Exhausted())

	budget.Consume(3)
	assert.Equal(t, 0, budget.Remaining())
	assert.True(t, budget.Exhausted())
}

func TestBudget_CanGoNegative(t *testing.T) {
	budget := NewBudget(1)

	// The last item may cost more than what remained.
	budget.Consume(2)
	assert.Equal(t, -1, budget.Remaining())
	assert.True(t, budget.Exhausted())
}

func TestBudget_ZeroOperations(t *testing.T) {
	budget := NewBudget(0)
	assert.True(t, budget.Exhausted())
}
