// condex - capture text with condex patterns
//
// Usage:
//
//	condex scan -c condex.yaml file.txt
//	condex scan -p 'tag=@-(' -p 'args=[(,] - : - [,=]' < file.txt
//	condex check -c condex.yaml
package main

import (
	"os"

	"github.com/coregx/condex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
