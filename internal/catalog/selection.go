package catalog

import "sort"

// TagSelection is the set of tags picked in the tag bar.
type TagSelection struct {
	tags map[string]struct{}
}

func NewTagSelection(tags ...string) *TagSelection {
	s := &TagSelection{tags: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		s.tags[tag] = struct{}{}
	}
	return s
}

// Toggle adds the tag if it is not selected and removes it otherwise.
// It reports whether the tag is selected afterwards.
func (s *TagSelection) Toggle(tag string) bool {
	if _, ok := s.tags[tag]; ok {
		delete(s.tags, tag)
		return false
	}
	s.tags[tag] = struct{}{}
	return true
}

func (s *TagSelection) Contains(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

// Tags returns the selected tags sorted.
func (s *TagSelection) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s *TagSelection) Len() int {
	return len(s.tags)
}

func (s *TagSelection) Clear() {
	clear(s.tags)
}
