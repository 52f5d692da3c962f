package main

import "github.com/frahmantamala/shift-scheduling/cmd"

func main() {
	cmd.Execute()
}
