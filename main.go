package main

import (
	"github.com/axellelanca/urlmanager/cmd"
	_ "github.com/axellelanca/urlmanager/cmd/cli"
)

func main() {
	cmd.Execute()
}
