package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasClearance(t *testing.T) {
	// lower role number means broader authority
	assert.True(t, HasClearance(1, 1), "admin meets admin-level requirement")
	assert.True(t, HasClearance(1, 3), "admin meets member-level requirement")
	assert.True(t, HasClearance(2, 2))
	assert.False(t, HasClearance(3, 2), "member cannot meet librarian-level requirement")
	assert.False(t, HasClearance(3, 1))
}

func TestRowVisible(t *testing.T) {
	// a row is visible when its access level is at or above the caller's role
	assert.True(t, RowVisible(10, 3), "public row visible to members")
	assert.True(t, RowVisible(3, 3))
	assert.True(t, RowVisible(2, 1), "restricted row visible to admin")
	assert.False(t, RowVisible(2, 3), "restricted row hidden from members")
	assert.False(t, RowVisible(1, 2))
}
