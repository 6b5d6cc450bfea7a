package cli

import (
	"slices"
	"strings"

	"github.com/at-ishikawa/lemon/internal/catalog"
)

func displayTitle(entry catalog.Entry) string {
	if entry.Title == "" {
		return "(untitled)"
	}
	return entry.Title
}

// renderTagBar shows every tag in the catalog, selected ones highlighted.
// Tags are sorted for display only.
func (s *Session) renderTagBar() {
	tags := s.catalog.AllTags()
	for _, tag := range s.selection.Tags() {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		s.println("No tags")
		return
	}
	slices.Sort(tags)

	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		if s.selection.Contains(tag) {
			labels = append(labels, s.selected.Sprintf("[%s]", tag))
		} else {
			labels = append(labels, s.unselected.Sprintf("(%s)", tag))
		}
	}
	s.println("Tags: " + strings.Join(labels, " "))
}

func (s *Session) renderList() {
	s.renderTagBar()

	visible := s.visible()
	if len(visible) == 0 {
		if s.catalog.Len() == 0 {
			s.println("No entries yet. Type add to create one.")
		} else {
			s.println("No entries match the selected tags.")
		}
		return
	}
	for i, entry := range visible {
		var markers []string
		if entry.HasImage() {
			markers = append(markers, "image")
		}
		if entry.HasAudio() {
			markers = append(markers, "audio")
		}
		line := s.bold.Sprint(displayTitle(entry))
		if len(markers) > 0 {
			line += " " + s.italic.Sprintf("(%s)", strings.Join(markers, ", "))
		}
		s.printf("%3d. %s\n", i+1, line)
	}
}

func (s *Session) renderDetail(entry catalog.Entry) {
	s.printf("%s %s\n", s.bold.Sprint("Title:"), displayTitle(entry))
	s.printf("%s %s\n", s.bold.Sprint("Detail:"), entry.Detail)
	if len(entry.Tags) > 0 {
		s.printf("%s %s\n", s.bold.Sprint("Tags:"), strings.Join(entry.Tags, ", "))
	}
	if entry.HasImage() {
		s.printf("%s %s\n", s.bold.Sprint("Image:"), entry.Image)
	}
	if entry.HasAudio() {
		s.printf("%s %s\n", s.bold.Sprint("Audio:"), entry.AudioLocator)
	}
	if entry.HasLink() {
		s.printf("%s %s\n", s.bold.Sprint("URL:"), entry.LinkURL)
	}
	s.printf("%s %s\n", s.bold.Sprint("Date:"), entry.Date.Format(dateLayout))
}

func (s *Session) renderHelp() {
	s.println(`Commands:
  list                 show entries matching the selected tags
  tags                 show every tag
  toggle <tag>         select or deselect a tag
  clear                deselect every tag
  add                  create an entry
  show <n>             show entry n in full
  delete <n>...        delete entries by number
  play <n>             play the audio of entry n
  cloud                generate the word cloud
  help                 show this help
  quit                 leave the session`)
}
