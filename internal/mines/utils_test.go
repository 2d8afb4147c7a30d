package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellTodo(t *testing.T) {
	todo := newCellTodo(8)
	assert.True(t, todo.empty())

	for _, i := range []int{5, 2, 7} {
		todo.add(i)
	}
	assert.Equal(t, 5, todo.pop())
	todo.add(0)
	assert.Equal(t, 2, todo.pop())
	assert.Equal(t, 7, todo.pop())
	assert.Equal(t, 0, todo.pop())
	assert.True(t, todo.empty())

	todo.add(3)
	assert.False(t, todo.empty())
	assert.Equal(t, 3, todo.pop())
	assert.True(t, todo.empty())
}
