package main

import (
	"github.com/joho/godotenv"

	"github.com/atarik0/workout-tracker/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
