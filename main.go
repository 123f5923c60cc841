package main

import "horizon/cmd"

func main() {
	cmd.Execute()
}
