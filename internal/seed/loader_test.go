package seed

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSeed = `---
movies:
  - id: tt0499549
    title: Avatar
    year: "2009"
    genres: [ACTION, ADVENTURE, FANTASY]
    director: James Cameron
    actors: Sam Worthington, Zoe Saldana, Sigourney Weaver
    plot: A paraplegic marine dispatched to the moon Pandora on a unique mission.
    images:
      - https://images.example.com/avatar/1.jpg
    rating: 7.9
  - id: tt0416449
    title: "300"
    year: "2006"
    genres: [ACTION, DRAMA, FANTASY]
    director: Zack Snyder
    actors: Gerard Butler, Lena Headey
    rating: 7.7
    is_favorite: true
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader(writeSeed(t, sampleSeed))
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Movies) != 2 {
		t.Fatalf("Load() returned %v movies, want 2", len(file.Movies))
	}
	if file.Movies[1].Title != "300" {
		t.Errorf("second movie title = %q, want %q", file.Movies[1].Title, "300")
	}
	if file.Movies[0].Year != "2009" {
		t.Errorf("first movie year = %q, want %q", file.Movies[0].Year, "2009")
	}
	if !file.Movies[1].IsFavorite {
		t.Error("second movie should be favorite")
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	content := `movies:
  - title: Heat
    year: "1995"
    genres: [CRIME]
    images: [{{POSTER_CDN}}]
    rating: 8.3
`
	file, err := NewLoader(writeSeed(t, content)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Movies) != 1 || file.Movies[0].Images[0] != "" {
		t.Errorf("template variable should be replaced by empty string, got %+v", file.Movies)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/movies.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("movies: [")); err == nil {
		t.Error("Parse() with malformed yaml should return error")
	}
}

func TestStripTemplateVariablesFunc(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "single template variable",
			input:    []byte("url: {{POSTER_CDN}}"),
			expected: "url: \"\"",
		},
		{
			name:     "no template variables",
			input:    []byte("plain text"),
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripTemplateVariables(tt.input)
			if string(result) != tt.expected {
				t.Errorf("stripTemplateVariables() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}
