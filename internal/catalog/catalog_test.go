package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntries() (Entry, Entry, Entry) {
	a := NewEntry("apple", "a red fruit", WithTags("fruit", "red"))
	b := NewEntry("banana", "a yellow fruit", WithTags("fruit"))
	c := NewEntry("chair", "furniture")
	return a, b, c
}

func TestNewEntry(t *testing.T) {
	date := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		opts      []EntryOption
		wantImage bool
		wantAudio bool
		wantLink  bool
		wantTags  []string
		wantDate  time.Time
	}{
		{
			name: "no options",
		},
		{
			name: "all options",
			opts: []EntryOption{
				WithImage("photos/apple.jpg"),
				WithAudio("file:///docs/recording.m4a"),
				WithLink("https://example.com/apple"),
				WithTags("fruit", "red", "fruit"),
				WithDate(date),
			},
			wantImage: true,
			wantAudio: true,
			wantLink:  true,
			wantTags:  []string{"fruit", "red", "fruit"},
			wantDate:  date,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			got := NewEntry("apple", "detail", tt.opts...)

			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "apple", got.Title)
			assert.Equal(t, "detail", got.Detail)
			assert.Equal(t, tt.wantImage, got.HasImage())
			assert.Equal(t, tt.wantAudio, got.HasAudio())
			assert.Equal(t, tt.wantLink, got.HasLink())
			assert.Equal(t, tt.wantTags, got.Tags)
			if tt.wantDate.IsZero() {
				assert.False(t, got.Date.Before(before))
			} else {
				assert.Equal(t, tt.wantDate, got.Date)
			}
		})
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		e := NewEntry(fmt.Sprintf("word %d", i), "")
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestNewEntry_EmptyTitleIsValid(t *testing.T) {
	c := New()
	c.Add(NewEntry("", ""))
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_Filter(t *testing.T) {
	a, b, c := newTestEntries()
	cat := New(a, b, c)

	tests := []struct {
		name     string
		selected []string
		want     []Entry
	}{
		{
			name:     "no selection returns everything in order",
			selected: nil,
			want:     []Entry{a, b, c},
		},
		{
			name:     "single tag",
			selected: []string{"red"},
			want:     []Entry{a},
		},
		{
			name:     "shared tag keeps catalog order",
			selected: []string{"fruit"},
			want:     []Entry{a, b},
		},
		{
			name:     "tags are ORed",
			selected: []string{"red", "fruit"},
			want:     []Entry{a, b},
		},
		{
			name:     "unknown tag",
			selected: []string{"vegetable"},
			want:     []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.Filter(tt.selected)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, cat.Filter(tt.selected), "repeated calls must agree")
		})
	}
}

func TestCatalog_FilterProperty(t *testing.T) {
	cat := New(
		NewEntry("a", "", WithTags("x", "y")),
		NewEntry("b", "", WithTags("y")),
		NewEntry("c", ""),
		NewEntry("d", "", WithTags("z", "z")),
		NewEntry("e", "", WithTags("w")),
	)
	selections := [][]string{{"x"}, {"y"}, {"z"}, {"x", "z"}, {"q"}, {"w", "y"}}

	for _, selected := range selections {
		set := make(map[string]struct{})
		for _, tag := range selected {
			set[tag] = struct{}{}
		}
		got := cat.Filter(selected)
		ids := make(map[string]struct{})
		for _, e := range got {
			assert.True(t, e.HasAnyTag(set), "%s should not match %v", e.Title, selected)
			ids[e.ID] = struct{}{}
		}
		for _, e := range cat.Entries() {
			if _, ok := ids[e.ID]; !ok {
				assert.False(t, e.HasAnyTag(set), "%s should match %v", e.Title, selected)
			}
		}
	}
}

func TestCatalog_AllTags(t *testing.T) {
	a, b, c := newTestEntries()

	tests := []struct {
		name    string
		entries []Entry
		want    []string
	}{
		{
			name: "empty catalog",
			want: []string{},
		},
		{
			name:    "deduplicated union",
			entries: []Entry{a, b, c},
			want:    []string{"fruit", "red"},
		},
		{
			name:    "duplicates inside one entry",
			entries: []Entry{NewEntry("x", "", WithTags("go", "go", "lang"))},
			want:    []string{"go", "lang"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New(tt.entries...)
			assert.ElementsMatch(t, tt.want, cat.AllTags())
			assert.ElementsMatch(t, cat.AllTags(), cat.AllTags())
		})
	}
}

func TestCatalog_Add(t *testing.T) {
	cat := New()
	var added []Entry
	for i := 0; i < 5; i++ {
		e := NewEntry(fmt.Sprintf("word %d", i), "")
		cat.Add(e)
		added = append(added, e)

		assert.Equal(t, i+1, cat.Len())
		last, err := cat.At(cat.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, e, last)
	}
	assert.Equal(t, added, cat.Filter(nil))
}

func TestCatalog_Remove(t *testing.T) {
	a, b, c := newTestEntries()

	tests := []struct {
		name     string
		position int
		want     []Entry
		wantErr  error
	}{
		{
			name:     "middle",
			position: 1,
			want:     []Entry{a, c},
		},
		{
			name:     "first",
			position: 0,
			want:     []Entry{b, c},
		},
		{
			name:     "last",
			position: 2,
			want:     []Entry{a, b},
		},
		{
			name:     "negative",
			position: -1,
			want:     []Entry{a, b, c},
			wantErr:  ErrOutOfRange,
		},
		{
			name:     "past the end",
			position: 3,
			want:     []Entry{a, b, c},
			wantErr:  ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New(a, b, c)
			err := cat.Remove(tt.position)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, cat.Entries())
		})
	}
}

func TestCatalog_Remove_EmptyCatalog(t *testing.T) {
	cat := New()
	assert.ErrorIs(t, cat.Remove(0), ErrOutOfRange)
	assert.Equal(t, 0, cat.Len())
}

func TestCatalog_RemoveAt(t *testing.T) {
	a, b, c := newTestEntries()

	tests := []struct {
		name      string
		positions []int
		want      []Entry
		wantErr   error
	}{
		{
			name:      "several positions",
			positions: []int{2, 0},
			want:      []Entry{b},
		},
		{
			name:      "repeated position",
			positions: []int{1, 1},
			want:      []Entry{a, c},
		},
		{
			name:      "one invalid position keeps everything",
			positions: []int{0, 5},
			want:      []Entry{a, b, c},
			wantErr:   ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New(a, b, c)
			err := cat.RemoveAt(tt.positions...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, cat.Entries())
		})
	}
}

func TestCatalog_Find(t *testing.T) {
	a, b, _ := newTestEntries()
	cat := New(a, b)

	got, err := cat.Find(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = cat.Find("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_EntriesIsACopy(t *testing.T) {
	a, b, _ := newTestEntries()
	cat := New(a, b)

	entries := cat.Entries()
	entries[0] = b
	got, err := cat.At(0)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}
