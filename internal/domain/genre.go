package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownGenre is returned when a name is not part of the Genre enumeration.
var ErrUnknownGenre = errors.New("unknown genre")

// Genre is the closed set of categories a movie can be tagged with.
type Genre string

const (
	GenreAction      Genre = "ACTION"
	GenreAdventure   Genre = "ADVENTURE"
	GenreAnimation   Genre = "ANIMATION"
	GenreBiography   Genre = "BIOGRAPHY"
	GenreComedy      Genre = "COMEDY"
	GenreCrime       Genre = "CRIME"
	GenreDocumentary Genre = "DOCUMENTARY"
	GenreDrama       Genre = "DRAMA"
	GenreFamily      Genre = "FAMILY"
	GenreFantasy     Genre = "FANTASY"
	GenreHistory     Genre = "HISTORY"
	GenreHorror      Genre = "HORROR"
	GenreMusic       Genre = "MUSIC"
	GenreMystery     Genre = "MYSTERY"
	GenreRomance     Genre = "ROMANCE"
	GenreScifi       Genre = "SCIFI"
	GenreThriller    Genre = "THRILLER"
	GenreWar         Genre = "WAR"
	GenreWestern     Genre = "WESTERN"
)

var allGenres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreAnimation,
	GenreBiography,
	GenreComedy,
	GenreCrime,
	GenreDocumentary,
	GenreDrama,
	GenreFamily,
	GenreFantasy,
	GenreHistory,
	GenreHorror,
	GenreMusic,
	GenreMystery,
	GenreRomance,
	GenreScifi,
	GenreThriller,
	GenreWar,
	GenreWestern,
}

// AllGenres returns every genre in declaration order.
func AllGenres() []Genre {
	return append([]Genre(nil), allGenres...)
}

// ParseGenre maps an exact enumeration name to its Genre.
func ParseGenre(name string) (Genre, error) {
	g := Genre(name)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, name)
	}
	return g, nil
}

// IsValid returns true if the genre is one of the defined constants.
func (g Genre) IsValid() bool {
	for _, known := range allGenres {
		if g == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (g Genre) String() string {
	return string(g)
}
