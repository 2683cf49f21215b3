// wirekit generates pooled, allocation-averse Go message types from a
// protocol-buffers descriptor set.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
