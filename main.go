package main

import "country-explorer/cmd"

func main() {
	cmd.Execute()
}
