package main

import (
	"os"

	"github.com/home-assistant/sarifmerge/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
