package main

import "ordina/cmd/ordina-cli/cmd"

func main() {
	cmd.Execute()
}
