// Package main provides the entry point for the silhouette tracer CLI.
package main

import (
	"log"

	"silhouette-tracer/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cmd.Execute()
}
