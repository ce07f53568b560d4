package form

import "github.com/MrSnakeDoc/moviedb/internal/domain"

// newSelectableGenres builds one unselected entry per genre, in
// enumeration order. The list never grows or shrinks afterwards.
func newSelectableGenres() []domain.SelectableGenre {
	all := domain.AllGenres()
	items := make([]domain.SelectableGenre, 0, len(all))
	for _, g := range all {
		items = append(items, domain.SelectableGenre{Title: g.String()})
	}
	return items
}

// ToggleGenre flips the selection of the genre with the given name.
// An unknown name is a no-op; the return value only reports whether it matched.
func (f *Form) ToggleGenre(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.genres {
		if f.genres[i].Title == name {
			f.genres[i].IsSelected = !f.genres[i].IsSelected
			return true
		}
	}
	return false
}

// SelectableGenres returns the genre list with its selection flags.
func (f *Form) SelectableGenres() []domain.SelectableGenre {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]domain.SelectableGenre(nil), f.genres...)
}

// SelectedGenres returns the names of the selected genres, in list order.
func (f *Form) SelectedGenres() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	selected := selectedLocked(f.genres)
	names := make([]string, 0, len(selected))
	for _, item := range selected {
		names = append(names, item.Title)
	}
	return names
}

func selectedLocked(items []domain.SelectableGenre) []domain.SelectableGenre {
	var selected []domain.SelectableGenre
	for _, item := range items {
		if item.IsSelected {
			selected = append(selected, item)
		}
	}
	return selected
}

func clearFirstLocked(items []domain.SelectableGenre) {
	for i := range items {
		if items[i].IsSelected {
			items[i].IsSelected = false
			return
		}
	}
}

func clearAllLocked(items []domain.SelectableGenre) {
	for i := range items {
		items[i].IsSelected = false
	}
}
