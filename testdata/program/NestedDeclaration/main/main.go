package main

import "fmt"

func main() {
	fmt.Println(NewUserName("Ryota"))
}
