package main

import (
	"log"

	"github.com/MrSnakeDoc/moviedb/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ moviedb failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ moviedb stopped with error: %v", err)
	}
}
