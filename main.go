package main

import "termdeck/cmd"

func main() {
	cmd.Execute()
}
