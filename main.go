package main

import "github.com/Jayesh-JainX/stylecheck/cmd"

func main() {
	cmd.Execute()
}
