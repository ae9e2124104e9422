package main

import "github.com/outcomelabs/clobcore/cmd"

func main() {
	cmd.Execute()
}
