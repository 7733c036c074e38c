// Command pargraph generates weighted graphs and runs the sequential and
// parallel graph algorithms on them, printing timing reports.
package main

import "os"

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.stopProfile()
	if err != nil {
		os.Exit(1)
	}
}
