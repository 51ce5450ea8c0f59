// Package main implements the entry point for the quire server, which serves
// the blog and survey web application and its JSON API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
