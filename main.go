package main

import "github.com/ZacxDev/splugh/cmd"

func main() {
	cmd.Execute()
}
