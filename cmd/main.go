package main

import "github.com/Mayi21/tool-sites/internal/cli"

func main() {
	cli.Execute()
}
