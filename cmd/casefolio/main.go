package main

import (
	"log"

	"github.com/casefolio/casefolio/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ casefolio failed to start: %v", err)
	}
}
