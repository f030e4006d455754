package main

import "github.com/mateconpizza/mzd/cmd"

func main() {
	cmd.Execute()
}
