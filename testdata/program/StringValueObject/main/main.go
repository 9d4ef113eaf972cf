package main

import "fmt"

func main() {
	userName := NewUserName("Ryota")
	otherUserName := userName

	fmt.Println("userName:", userName)
	fmt.Println("userName.Value():", userName.Value())
	fmt.Println("userName == otherUserName:", userName == otherUserName)
	fmt.Println("userName.Equal(otherUserName):", userName.Equal(otherUserName))
	fmt.Println(`userName == NewUserName("Ryota"):`, userName == NewUserName("Ryota"))
	fmt.Println(`userName.Equal(NewUserName("Ryota")):`, userName.Equal(NewUserName("Ryota")))
	fmt.Println(`userName.Equal(NewUserName("Taro")):`, userName.Equal(NewUserName("Taro")))
	fmt.Println(`userName.NotEqual(NewUserName("Taro")):`, userName.NotEqual(NewUserName("Taro")))
	fmt.Println("userName.Equals(nil):", userName.Equals(nil))
	fmt.Println(`userName.Equals(""):`, userName.Equals(""))
	fmt.Println(`userName.Equals("Ryota"):`, userName.Equals("Ryota"))
	fmt.Println(`userName.Equals(NewUserName("Ryota")):`, userName.Equals(NewUserName("Ryota")))
	fmt.Println(`userName.Hash() == NewUserName("Ryota").Hash():`, userName.Hash() == NewUserName("Ryota").Hash())
	fmt.Println(`UserNameFromString("Taro").String():`, UserNameFromString("Taro").String())

	fieldName := NewCustomizedPropertyName("CustomizedPropertyName")
	fmt.Println("fieldName.StringValue():", fieldName.StringValue())
}
