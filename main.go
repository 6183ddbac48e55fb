package main

import "github.com/alexiusacademia/gostress/cmd"

func main() {
	cmd.Execute()
}
