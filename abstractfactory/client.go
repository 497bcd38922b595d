package abstractfactory

import (
	"fmt"
	"io"
)

// RunClient exercises a factory through the abstract interfaces only: it
// builds one product of each kind and writes the results of both product-B
// operations to w, one line each. It works with any AbstractFactory,
// including variants registered after this package was written.
func RunClient(w io.Writer, factory AbstractFactory) {
	productA := factory.CreateProductA()
	productB := factory.CreateProductB()

	fmt.Fprintln(w, productB.UsefulFunctionB())
	fmt.Fprintln(w, productB.AnotherUsefulFunctionB(productA))
}

// Demo runs the canonical demonstration: the same client code against both
// built-in factories, separated by a blank line. Output goes to w so the
// sequence stays testable apart from program startup.
func Demo(w io.Writer) {
	fmt.Fprintln(w, "Client: Testing client code with the first factory type...")
	RunClient(w, NewConcreteFactory1())

	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: Testing the same client code with the second factory type...")
	RunClient(w, NewConcreteFactory2())
}
