package domain

// Error messages shown next to form fields.
const (
	MsgTitleRequired    = "Title is required"
	MsgYearRequired     = "Year is required"
	MsgDirectorRequired = "Director is required"
	MsgActorsRequired   = "Actors is required"
	MsgRatingInvalid    = "Rating is required and must be valid decimal format."
	MsgGenreRequired    = "Genre is required"
)

// ValidationResult is the validation state of the create-movie form.
//
// It is a value type: validators build a modified copy and replace the
// previous one wholesale. The zero value is the reset state (nothing valid,
// no messages).
//
// For each field pair, the message is non-empty iff the flag is false and the
// field has been validated. Genre selection has no flag; an empty GenreErrMsg
// means the selection is currently acceptable.
type ValidationResult struct {
	IsTitleValid bool   `json:"is_title_valid"`
	TitleErrMsg  string `json:"title_err_msg"`

	IsYearValid bool   `json:"is_year_valid"`
	YearErrMsg  string `json:"year_err_msg"`

	IsDirectorValid bool   `json:"is_director_valid"`
	DirectorErrMsg  string `json:"director_err_msg"`

	IsActorsValid bool   `json:"is_actors_valid"`
	ActorsErrMsg  string `json:"actors_err_msg"`

	IsRatingValid bool   `json:"is_rating_valid"`
	RatingErrMsg  string `json:"rating_err_msg"`

	GenreErrMsg string `json:"genre_err_msg"`
}

// SelectableGenre is one entry of the form's multi-select genre list.
type SelectableGenre struct {
	Title      string `json:"title"`
	IsSelected bool   `json:"is_selected"`
}
