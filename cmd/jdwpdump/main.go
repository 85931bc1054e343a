// Command jdwpdump is an offline diagnostic tool over a captured stream
// of raw JDWP bytes. It does no socket I/O, no correlation and no
// dispatch: it only classifies and prints what protocol/jdwp can decode
// from a file.
package main

import "github.com/go-jdwp/jdwpwire/cmd/jdwpdump/cmd"

func main() {
	cmd.Execute()
}
