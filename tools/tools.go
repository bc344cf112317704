// +build tools

package tools

import (
	_ "github.com/dvyukov/go-fuzz/go-fuzz-defs"
	_ "github.com/dvyukov/go-fuzz-corpus/fuzz"
)

// This file imports packages that are used when running go generate, or used
// during the development process but not otherwise depended on by built code.
