package seed

// File is the top-level structure of the seed YAML file.
//
//	movies:
//	  - id: tt0499549
//	    title: Avatar
//	    year: "2009"
//	    genres: [ACTION, ADVENTURE, FANTASY]
//	    ...
type File struct {
	Movies []MovieProps `yaml:"movies"`
}

// MovieProps is one movie as written in the seed file.
// Year is kept as text; quote it in YAML.
type MovieProps struct {
	ID         string   `yaml:"id,omitempty"`
	Title      string   `yaml:"title"`
	Year       string   `yaml:"year"`
	Genres     []string `yaml:"genres"`
	Director   string   `yaml:"director"`
	Actors     string   `yaml:"actors"`
	Plot       string   `yaml:"plot,omitempty"`
	Images     []string `yaml:"images,omitempty"`
	Rating     float64  `yaml:"rating"`
	IsFavorite bool     `yaml:"is_favorite,omitempty"`
}
