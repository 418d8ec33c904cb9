package main

import "github.com/chrisdamba/foodstories/cmd"

func main() {
	cmd.Execute()
}
