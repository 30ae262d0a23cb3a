// Command hopgraph answers degrees-of-separation queries over plain
// edge-list text: fewest-hop path, hop count, and optional DOT or JSON
// renderings of the parsed network.
//
//	echo "A B
//	B C" | hopgraph --from A --to C
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
