package redis

import "fmt"

const (
	// KeyPrefixMovie is the prefix for movie keys
	KeyPrefixMovie = "moviedb:movie:"
	// KeyCatalogOrder is the list of movie IDs in catalog order
	KeyCatalogOrder = "moviedb:movies:all"
)

// MovieKey returns the Redis key for a movie by ID
func MovieKey(id string) string {
	return KeyPrefixMovie + id
}

// CatalogOrderKey returns the key for the ordered list of movie IDs
func CatalogOrderKey() string {
	return KeyCatalogOrder
}

// ExtractMovieID extracts the movie ID from a Redis key
func ExtractMovieID(key string) (string, error) {
	if len(key) <= len(KeyPrefixMovie) || key[:len(KeyPrefixMovie)] != KeyPrefixMovie {
		return "", fmt.Errorf("invalid movie key: %s", key)
	}
	return key[len(KeyPrefixMovie):], nil
}
