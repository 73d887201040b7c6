package main

import "github.com/amirkhaki/gobasics/cmd/gobasics/cmd"

func main() {
	cmd.Execute()
}
