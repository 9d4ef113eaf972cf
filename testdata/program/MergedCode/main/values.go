//go:build vogen

package main

import (
	"fmt"
	"strings"

	"github.com/sublee/vogen"
)

// Greeting is the greeting words to a user.
type Greeting struct{ vogen.String }

const defaultName = "Anonymous"

// Buffer is not a value object. It is kept as is.
type Buffer struct{ strings.Builder }

func greet(name string) string {
	if name == "" {
		name = defaultName
	}
	return fmt.Sprintf("Hello, %s!", name)
}
