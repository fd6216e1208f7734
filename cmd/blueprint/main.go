package main

import "github.com/philipparndt/blueprint/cmd"

func main() {
	cmd.Execute()
}
