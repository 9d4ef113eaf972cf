package main

import "fmt"

func main() {
	productID := NewProductID(1)
	otherProductID := productID
	categoryID := NewCategoryID(1)

	fmt.Println("productID:", productID)
	fmt.Println("productID.Value():", productID.Value())
	fmt.Println("productID == otherProductID:", productID == otherProductID)
	fmt.Println("productID.Equal(NewProductID(1)):", productID.Equal(NewProductID(1)))
	fmt.Println("productID.Equal(NewProductID(2)):", productID.Equal(NewProductID(2)))
	fmt.Println("productID.Equals(nil):", productID.Equals(nil))
	fmt.Println("productID.Equals(int32(1)):", productID.Equals(int32(1)))
	fmt.Println("productID == categoryID: compile error")
	fmt.Println("productID.Equals(categoryID):", productID.Equals(categoryID))
	fmt.Println("productID.Int32() == categoryID.Int32():", productID.Int32() == categoryID.Int32())

	names := map[ProductID]string{NewProductID(1): "apple"}
	fmt.Println("names[ProductIDFromInt32(1)]:", names[ProductIDFromInt32(1)])

	consumeID := NewConsumeID(1 << 40)
	fmt.Println("consumeID:", consumeID)
	fmt.Println("consumeID.Int64():", consumeID.Int64())
	fmt.Println("consumeID.Hash() == NewConsumeID(1<<40).Hash():", consumeID.Hash() == NewConsumeID(1<<40).Hash())
	fmt.Println("NewConsumeID(-7).String():", NewConsumeID(-7).String())
}
