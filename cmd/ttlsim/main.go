// Command ttlsim drives transistor-level CMOS circuits through their
// truth tables from the shell.
package main

import "github.com/jonesinator/ttlsim/cmd/ttlsim/cmd"

func main() {
	cmd.Execute()
}
