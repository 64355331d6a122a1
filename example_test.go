package binio_test

import (
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/binio"
)

// Example demonstrates writing a few fields to a binary file and reading
// them back at their offsets.
func Example() {
	path := "./example.bin"
	defer os.Remove(path) // Cleanup after example

	w, err := binio.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	magic := binio.MustParseDescriptor("uint32")
	name := binio.MustParseDescriptor("cstring")

	if _, err := w.Write(magic, binio.Uint(0xCAFEBABE), 0, 0, binio.Start); err != nil {
		log.Fatal(err)
	}
	if _, err := w.Write(name, binio.String("binio"), 4, 0, binio.Start); err != nil {
		log.Fatal(err)
	}

	v, err := w.Read(magic, 0, 0, binio.Start)
	if err != nil {
		log.Fatal(err)
	}
	s, err := w.Read(name, 4, 0, binio.Start)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("0x%08X %s\n", v.UintValue(), s.StringValue())
	// Output: 0xCAFEBABE binio
}

// Example_classification demonstrates the descriptor vocabulary helpers.
func Example_classification() {
	fmt.Println(binio.IsPrimitive("uint32"))
	fmt.Println(binio.IsPrimitive("uint32[]"))
	fmt.Println(binio.IsArray("uint32[]"))
	fmt.Println(binio.IsPointer("uint32*"))
	fmt.Println(binio.PrimitiveWidth("float64"))
	fmt.Println(binio.PrimitiveWidth("cstring"))
	// Output:
	// true
	// false
	// true
	// true
	// 8
	// 0
}
