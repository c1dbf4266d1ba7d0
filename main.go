package main

import "github.com/they4kman/lightsout/cmd"

func main() {
	cmd.Execute()
}
