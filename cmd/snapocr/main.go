package main

import "github.com/MeKo-Tech/snapocr/cmd/snapocr/cmd"

func main() {
	cmd.Execute()
}
