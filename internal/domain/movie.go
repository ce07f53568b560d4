package domain

// Movie represents one entry of the catalog.
//
// A Movie is uniquely identified by its ID. Seeded movies carry the ID
// assigned by their source; movies created through the form get a fresh UUID.
type Movie struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// It never changes once assigned.
	ID string `json:"id" yaml:"id"`

	// ─────────────────────────────
	// Description (set at creation)
	// ─────────────────────────────

	Title    string `json:"title" yaml:"title"`
	Year     string `json:"year" yaml:"year"` // kept as entered, not a number
	Director string `json:"director" yaml:"director"`

	// Actors is a free-form list of names, as typed in the form.
	Actors string `json:"actors" yaml:"actors"`

	Plot   string  `json:"plot" yaml:"plot"`
	Genres []Genre `json:"genres" yaml:"genres"`
	Rating float64 `json:"rating" yaml:"rating"`

	// Images holds image references (URLs or asset names).
	// Movies created from the form start with none.
	Images []string `json:"images" yaml:"images"`

	// ─────────────────────────────
	// User state (mutable)
	// ─────────────────────────────

	// IsFavorite is the only field that may change after creation.
	IsFavorite bool `json:"is_favorite" yaml:"is_favorite"`
}

// Clone returns a deep copy so callers cannot alias the catalog's slices.
func (m Movie) Clone() Movie {
	out := m
	if m.Genres != nil {
		out.Genres = make([]Genre, len(m.Genres))
		copy(out.Genres, m.Genres)
	}
	if m.Images != nil {
		out.Images = make([]string, len(m.Images))
		copy(out.Images, m.Images)
	}
	return out
}
