package main

import "github.com/pg84s/loankv/cmd"

func main() {
	cmd.Execute()
}
