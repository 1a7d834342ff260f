// Command agglo clusters weighted items into capacity-bounded groups and
// materializes the result as blobs, an index and run reports.
package main

import "github.com/katalvlaran/agglo/cmd"

func main() {
	cmd.Execute()
}
