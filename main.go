package main

import "github.com/kendall-kelly/task-exchange-api/commands"

func main() {
	commands.Execute()
}
