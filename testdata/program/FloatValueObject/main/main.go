package main

import "fmt"

func main() {
	scale := NewScale(0.5)
	fmt.Println("scale:", scale)
	fmt.Println("scale == NewScale(0.5):", scale == NewScale(0.5))
	fmt.Println("scale.Equal(NewScale(2)):", scale.Equal(NewScale(2)))
	fmt.Println("scale.Equals(float32(0.5)):", scale.Equals(float32(0.5)))
	fmt.Println("scale.Float32():", scale.Float32())
	fmt.Println("ScaleFromFloat32(1.5):", ScaleFromFloat32(1.5))

	rate := NewRate(0.25)
	otherRate := rate
	fmt.Println("rate:", rate)
	fmt.Println("rate.Value():", rate.Value())
	fmt.Println("rate == otherRate:", rate == otherRate)
	fmt.Println("rate.Equal(otherRate):", rate.Equal(otherRate))
	fmt.Println("rate == NewRate(0.25):", rate == NewRate(0.25))
	fmt.Println("rate.Equal(NewRate(0.25)):", rate.Equal(NewRate(0.25)))
	fmt.Println("rate.Equal(NewRate(0.1)):", rate.Equal(NewRate(0.1)))
	fmt.Println("rate.Equal(nil):", rate.Equal(nil))
	fmt.Println("rate.Equals(nil):", rate.Equals(nil))
	fmt.Println("rate.Equals(0.25):", rate.Equals(0.25))
	fmt.Println("rate.Equals(NewRate(0.25)):", rate.Equals(NewRate(0.25)))
	fmt.Println("rate.Hash() == NewRate(0.25).Hash():", rate.Hash() == NewRate(0.25).Hash())

	var nilRate *Rate
	fmt.Println("nilRate:", nilRate)
	fmt.Println("nilRate.Equal(nil):", nilRate.Equal(nil))
	fmt.Println("nilRate.Equal(rate):", nilRate.Equal(rate))
	fmt.Println("nilRate.Hash():", nilRate.Hash())
}
