package main

import (
	"dojo/cmd"
	"os"
)

// @title           Dojo Backend API
// @version         1.0
// @description     Technique reference, class schedule and instructor API for the gym website.

// @contact.name   	Dojo Web Team
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
