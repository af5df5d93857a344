package main

import (
	"github.com/Rorical/GitLingo/cmd"
)

func main() {
	cmd.Execute()
}
