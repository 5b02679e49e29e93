package main

import "github.com/naka-gawa/lang-card/cmd"

func main() {
	cmd.Execute()
}
