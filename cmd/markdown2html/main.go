// Command markdown2html converts a Markdown file into HTML fragments.
//
//	markdown2html README.md README.html
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
