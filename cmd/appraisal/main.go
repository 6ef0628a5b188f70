package main

import (
	"log"

	"appraisal/internal/app/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("appraisal: %v", err)
	}
}
