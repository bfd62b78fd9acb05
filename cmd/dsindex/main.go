// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/dsindex/cmd/dsindex/cmd"
)

func main() {
	cmd.Execute()
}
