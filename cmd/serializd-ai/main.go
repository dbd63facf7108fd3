package main

import "github.com/rahullath/serializd-ai/internal/cli"

func main() {
	cli.Execute()
}
