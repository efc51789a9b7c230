package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/mastermind/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
