/*
Package hunkicon is a procedural icon generator, which renders the application
icon of a diff viewer entirely from signed distance fields, without any
external image asset or drawing library involved.

The icon depicts a rounded square badge with a two column diff panel and a
branch graph drawn over it. Every shape is evaluated analytically per pixel,
so the artwork stays perfectly crisp at any output resolution. The three
built-in color themes share the same geometry and differ only in their palette.

The package provides a command line interface, supporting various flags for the
different rendering operations. To check the supported commands type:

	$ hunkicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/hunkicon"
	)

	func main() {
		g := &hunkicon.Generator{
			// Initialize struct variables
		}

		if err := g.Process(os.Stdout, hunkicon.DefaultTheme); err != nil {
			fmt.Printf("Error rendering the icon: %s", err.Error())
		}
	}
*/
package hunkicon
