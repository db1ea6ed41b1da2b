// Command bogenliga-admin runs operator tasks against the bogenliga database:
// migrations, schema verification, account creation and token issuing.
package main

import "os"

func main() {
	os.Exit(execute())
}
