package form

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not one of the form's buffers.
var ErrUnknownField = errors.New("unknown form field")

// Field names one of the six text buffers of the form.
type Field string

const (
	FieldTitle    Field = "title"
	FieldYear     Field = "year"
	FieldDirector Field = "director"
	FieldActors   Field = "actors"
	FieldPlot     Field = "plot"
	FieldRating   Field = "rating"
)

// ParseField maps a field name to a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldTitle, FieldYear, FieldDirector, FieldActors, FieldPlot, FieldRating:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Fields is a snapshot of the text buffers.
type Fields struct {
	Title    string `json:"title"`
	Year     string `json:"year"`
	Director string `json:"director"`
	Actors   string `json:"actors"`
	Plot     string `json:"plot"`
	Rating   string `json:"rating"`
}

func (f *Fields) ref(field Field) *string {
	switch field {
	case FieldTitle:
		return &f.Title
	case FieldYear:
		return &f.Year
	case FieldDirector:
		return &f.Director
	case FieldActors:
		return &f.Actors
	case FieldPlot:
		return &f.Plot
	case FieldRating:
		return &f.Rating
	default:
		return nil
	}
}
