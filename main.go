package main

import "github.com/notargets/highorder/cmd"

func main() {
	cmd.Execute()
}
