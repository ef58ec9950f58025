// Command tweetdb converts the tweet CSV into a SQLite database the
// dashboard server can load with -data.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
