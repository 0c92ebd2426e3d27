package main

import "nira/cmd/nira/cmd"

func main() {
	cmd.Execute()
}
