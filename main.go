package main

import "github.com/they4kman/classicsweep/cmd"

func main() {
	cmd.Execute()
}
