package main

//go:generate go run github.com/sublee/vogen/cmd/vogen

import (
	"flag"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

var addr = flag.String("http", "", "serve value objects over HTTP at the address")

func main() {
	flag.Parse()
	if *addr != "" {
		e := newServer()
		e.Logger.Fatal(e.Start(*addr))
		return
	}

	name := NewUserName("Hello")
	fmt.Println(name, name.Value())
	fmt.Println(name.Equal(NewUserName("Hello")), name.NotEqual(NewUserName("World")))
	fmt.Println(name.Hash() == UserNameFromString("Hello").Hash())

	custom := NewCustomizedPropertyName("Custom")
	fmt.Println(custom.StringValue())

	product, category := NewProductID(42), NewCategoryID(42)
	fmt.Println(product, product.Int32() == category.Int32())
	fmt.Println(product.Equals(category), product.Equals(NewProductID(42)))

	rate := NewRate(0.25)
	fmt.Println(rate, rate.Equal(NewRate(0.25)), rate.Equal(nil))
	var unset *Rate
	fmt.Println(unset, unset.Hash())
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/users/:name", func(c echo.Context) error {
		name := NewUserName(c.Param("name"))
		return c.JSON(http.StatusOK, map[string]any{
			"name": name.Value(),
			"hash": strconv.FormatUint(name.Hash(), 16),
		})
	})

	e.GET("/products/:product/categories/:category", func(c echo.Context) error {
		product, err := parseInt32(c.Param("product"))
		if err != nil {
			return err
		}
		category, err := parseInt32(c.Param("category"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]any{
			"product":  NewProductID(product).Int32(),
			"category": NewCategoryID(category).Int32(),
			"equals":   NewProductID(product).Equals(NewCategoryID(category)),
		})
	})

	return e
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return int32(n), nil
}
