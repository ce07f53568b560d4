package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/events"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

// ErrRatingFormat is returned by Submit when the rating text is not a number.
// Validation normally keeps the gate closed in that case.
var ErrRatingFormat = errors.New("rating is not a decimal number")

// ErrSubmitDisabled is returned by SubmitIfEnabled while the gate is closed.
var ErrSubmitDisabled = errors.New("submit is disabled")

// Catalog receives submitted movies.
type Catalog interface {
	Append(movie domain.Movie)
}

// State is a full snapshot of the form for presentation.
type State struct {
	Fields        Fields                   `json:"fields"`
	Validation    domain.ValidationResult  `json:"validation"`
	SubmitEnabled bool                     `json:"submit_enabled"`
	Genres        []domain.SelectableGenre `json:"genres"`
}

// Option configures a Form.
type Option func(*Form)

// WithClearAllGenresOnReset makes Reset deselect every genre instead of only
// the first selected one.
func WithClearAllGenresOnReset(clearAll bool) Option {
	return func(f *Form) { f.clearAllOnReset = clearAll }
}

// WithIDGenerator overrides how identities of submitted movies are produced.
func WithIDGenerator(gen func() string) Option {
	return func(f *Form) { f.newID = gen }
}

// Form is the create-movie form: six text buffers, a genre multi-select,
// the validation state and the derived submit gate.
//
// Every validator replaces the ValidationResult wholesale, publishes it, and
// then calls recomputeGateLocked explicitly.
type Form struct {
	mu sync.Mutex

	catalog Catalog
	logger  logger.Logger

	fields        Fields
	validation    domain.ValidationResult
	submitEnabled bool
	genres        []domain.SelectableGenre

	clearAllOnReset bool
	newID           func() string

	stream *events.Broadcaster[domain.ValidationResult]
}

// New creates an empty form committing into catalog.
func New(catalog Catalog, log logger.Logger, opts ...Option) *Form {
	f := &Form{
		catalog: catalog,
		logger:  log.With(logger.String("component", "form")),
		genres:  newSelectableGenres(),
		newID:   uuid.NewString,
		stream:  events.NewBroadcaster[domain.ValidationResult](events.DefaultBuffer),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ─────────────────────────────────────────────────────────────────
// Text buffers
// ─────────────────────────────────────────────────────────────────

func (f *Form) SetTitle(v string)    { f.set(FieldTitle, v) }
func (f *Form) SetYear(v string)     { f.set(FieldYear, v) }
func (f *Form) SetDirector(v string) { f.set(FieldDirector, v) }
func (f *Form) SetActors(v string)   { f.set(FieldActors, v) }
func (f *Form) SetPlot(v string)     { f.set(FieldPlot, v) }
func (f *Form) SetRating(v string)   { f.set(FieldRating, v) }

// SetField stores value into the named buffer without validating it.
func (f *Form) SetField(field Field, value string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}
	f.set(field, value)
	return nil
}

func (f *Form) set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	*f.fields.ref(field) = value
}

// Fields returns the current buffer contents.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.fields
}

// ─────────────────────────────────────────────────────────────────
// Validators
// ─────────────────────────────────────────────────────────────────

func (f *Form) ValidateTitle() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := isFilled(f.fields.Title)
	f.updateLocked(func(v *domain.ValidationResult) {
		v.IsTitleValid, v.TitleErrMsg = valid, messageFor(valid, domain.MsgTitleRequired)
	})
}

// ValidateYear only checks presence; the year is not parsed.
func (f *Form) ValidateYear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := isFilled(f.fields.Year)
	f.updateLocked(func(v *domain.ValidationResult) {
		v.IsYearValid, v.YearErrMsg = valid, messageFor(valid, domain.MsgYearRequired)
	})
}

func (f *Form) ValidateDirector() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := isFilled(f.fields.Director)
	f.updateLocked(func(v *domain.ValidationResult) {
		v.IsDirectorValid, v.DirectorErrMsg = valid, messageFor(valid, domain.MsgDirectorRequired)
	})
}

func (f *Form) ValidateActors() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := isFilled(f.fields.Actors)
	f.updateLocked(func(v *domain.ValidationResult) {
		v.IsActorsValid, v.ActorsErrMsg = valid, messageFor(valid, domain.MsgActorsRequired)
	})
}

func (f *Form) ValidateRating() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := isValidRating(f.fields.Rating)
	f.updateLocked(func(v *domain.ValidationResult) {
		v.IsRatingValid, v.RatingErrMsg = valid, messageFor(valid, domain.MsgRatingInvalid)
	})
}

// ValidateGenres requires at least one selected genre.
func (f *Form) ValidateGenres() {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := len(selectedLocked(f.genres)) > 0
	f.updateLocked(func(v *domain.ValidationResult) {
		v.GenreErrMsg = messageFor(valid, domain.MsgGenreRequired)
	})
}

// Validate runs the validator of the given field. Plot has none.
func (f *Form) Validate(field Field) error {
	switch field {
	case FieldTitle:
		f.ValidateTitle()
	case FieldYear:
		f.ValidateYear()
	case FieldDirector:
		f.ValidateDirector()
	case FieldActors:
		f.ValidateActors()
	case FieldRating:
		f.ValidateRating()
	case FieldPlot:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// ValidateAll runs every validator, genres included.
func (f *Form) ValidateAll() {
	f.ValidateTitle()
	f.ValidateYear()
	f.ValidateDirector()
	f.ValidateActors()
	f.ValidateRating()
	f.ValidateGenres()
}

// updateLocked replaces the validation result with an updated copy,
// publishes it and recomputes the gate.
func (f *Form) updateLocked(mutate func(*domain.ValidationResult)) {
	next := f.validation
	mutate(&next)
	f.validation = next
	f.stream.Publish(next)

	f.recomputeGateLocked()
}

// recomputeGateLocked derives the submit gate.
//
// Title, year, director and actors gate on their raw text, not on their
// stored flags; rating and genres gate on their stored messages.
func (f *Form) recomputeGateLocked() {
	enabled := isFilled(f.fields.Title) &&
		isFilled(f.fields.Year) &&
		isFilled(f.fields.Director) &&
		isFilled(f.fields.Actors) &&
		isFilled(f.fields.Rating) && f.validation.RatingErrMsg == "" &&
		f.validation.GenreErrMsg == ""

	if enabled != f.submitEnabled {
		f.logger.Debug("submit gate changed", logger.Bool("enabled", enabled))
	}
	f.submitEnabled = enabled
}

func messageFor(valid bool, msg string) string {
	if valid {
		return ""
	}
	return msg
}

// ─────────────────────────────────────────────────────────────────
// Read side
// ─────────────────────────────────────────────────────────────────

// SubmitEnabled reports the current gate.
func (f *Form) SubmitEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitEnabled
}

// Validation returns the current validation result.
func (f *Form) Validation() domain.ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.validation
}

// State returns a full snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State{
		Fields:        f.fields,
		Validation:    f.validation,
		SubmitEnabled: f.submitEnabled,
		Genres:        append([]domain.SelectableGenre(nil), f.genres...),
	}
}

// SubscribeValidation returns a channel receiving every new validation
// result, starting with the current one.
func (f *Form) SubscribeValidation() <-chan domain.ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.validation
	return f.stream.Subscribe(&current)
}

// UnsubscribeValidation stops delivery and closes the channel.
func (f *Form) UnsubscribeValidation(ch <-chan domain.ValidationResult) {
	f.stream.Unsubscribe(ch)
}

// Close releases all subscribers.
func (f *Form) Close() {
	f.stream.Close()
}

// ─────────────────────────────────────────────────────────────────
// Submission
// ─────────────────────────────────────────────────────────────────

// Submit builds a movie from the current buffers and selected genres,
// appends it to the catalog and resets the form.
//
// It does not look at the gate: callers only submit while SubmitEnabled
// is true. The only failure is an unparsable rating, in which case nothing
// is changed.
func (f *Form) Submit() (domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitLocked()
}

// SubmitIfEnabled checks the gate and submits under the same lock.
func (f *Form) SubmitIfEnabled() (domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.submitEnabled {
		return domain.Movie{}, ErrSubmitDisabled
	}
	return f.submitLocked()
}

func (f *Form) submitLocked() (domain.Movie, error) {
	genres := make([]domain.Genre, 0, len(f.genres))
	for _, item := range selectedLocked(f.genres) {
		g, err := domain.ParseGenre(item.Title)
		if err != nil {
			// Selectable genres are built from the enumeration itself.
			panic(fmt.Sprintf("form: selectable genre is not part of the enumeration: %v", err))
		}
		genres = append(genres, g)
	}

	rating, err := parseRating(f.fields.Rating)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("%w: %q", ErrRatingFormat, f.fields.Rating)
	}

	movie := newMovie(f.newID(), f.fields, genres, rating)
	f.catalog.Append(movie)

	f.logger.Info("movie submitted",
		logger.String("id", movie.ID),
		logger.String("title", movie.Title),
		logger.Int("genres", len(movie.Genres)),
		logger.Float64("rating", movie.Rating))

	f.resetLocked()
	return movie, nil
}

// Reset returns the form to its initial state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.submitEnabled = false
	f.validation = domain.ValidationResult{}
	f.fields = Fields{}

	if f.clearAllOnReset {
		clearAllLocked(f.genres)
	} else {
		// Only the first selected genre is cleared.
		clearFirstLocked(f.genres)
	}

	f.stream.Publish(f.validation)
}

func newMovie(id string, fields Fields, genres []domain.Genre, rating float64) domain.Movie {
	return domain.Movie{
		ID:       id,
		Title:    fields.Title,
		Year:     fields.Year,
		Director: fields.Director,
		Actors:   fields.Actors,
		Plot:     strings.TrimSpace(fields.Plot),
		Genres:   genres,
		Rating:   rating,
		Images:   []string{},
	}
}
