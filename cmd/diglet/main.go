// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package main implements the diglet command, a one-shot batch DNS
// resolution tool with resolver rotation.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

// For CLI unit tests...
var osExit = os.Exit
