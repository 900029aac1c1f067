package main

import "github.com/combustsim/gobunsen/cmd"

func main() {
	cmd.Execute()
}
