// Command recipepipe extracts schema.org recipes from recipe websites.
package main

import "github.com/gaurav-prasanna/recipepipe/cmd"

func main() {
	cmd.Execute()
}
