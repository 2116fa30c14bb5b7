package main

import "ecorpus/cmd"

func main() {
	cmd.Execute()
}
