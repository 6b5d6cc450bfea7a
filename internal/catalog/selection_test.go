package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSelection_Toggle(t *testing.T) {
	s := NewTagSelection()

	assert.True(t, s.Toggle("fruit"))
	assert.True(t, s.Toggle("red"))
	assert.True(t, s.Contains("fruit"))
	assert.Equal(t, []string{"fruit", "red"}, s.Tags())

	assert.False(t, s.Toggle("fruit"))
	assert.False(t, s.Contains("fruit"))
	assert.Equal(t, []string{"red"}, s.Tags())
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Tags())
}

func TestTagSelection_DrivesFilter(t *testing.T) {
	a, b, c := newTestEntries()
	cat := New(a, b, c)
	s := NewTagSelection()

	assert.Equal(t, []Entry{a, b, c}, cat.Filter(s.Tags()))

	s.Toggle("red")
	assert.Equal(t, []Entry{a}, cat.Filter(s.Tags()))

	s.Toggle("fruit")
	assert.Equal(t, []Entry{a, b}, cat.Filter(s.Tags()))

	s.Toggle("red")
	s.Toggle("fruit")
	assert.Equal(t, []Entry{a, b, c}, cat.Filter(s.Tags()))
}
