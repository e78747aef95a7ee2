package main

import (
	"github.com/svanherk/casefan/cmd"
)

func main() {
	cmd.Execute()
}
