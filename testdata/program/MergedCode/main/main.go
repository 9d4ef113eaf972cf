package main

import "fmt"

func main() {
	g := NewGreeting(greet("Ryota"))
	fmt.Println(g)
	fmt.Println(NewGreeting(greet("")).Value())

	var buf Buffer
	buf.WriteString(g.String())
	fmt.Println(buf.Len())
}
