package main

import "github.com/notargets/gowing/cmd"

func main() {
	cmd.Execute()
}
