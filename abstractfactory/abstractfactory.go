// Package abstractfactory implements the Abstract Factory creational pattern:
// two families of related products behind a single factory interface.
//
// Each concrete factory produces the product variants of exactly one family,
// so a client holding only the AbstractFactory interface always ends up with
// a matching set of products. The interfaces are flat; there is no hierarchy
// between variants and every factory call constructs a fresh instance.
//
// Note that nothing in the types stops a caller from handing a family-1
// product B a family-2 collaborator. Matching families is a documented
// contract of the pattern, not something the compiler checks.
package abstractfactory

// AbstractProductA is the first product capability. Each family ships one
// implementation of it.
type AbstractProductA interface {
	UsefulFunctionA() string
}

// AbstractProductB is the second product capability. Its collaboration
// method accepts any AbstractProductA, including one from another family.
type AbstractProductB interface {
	UsefulFunctionB() string
	AnotherUsefulFunctionB(collaborator AbstractProductA) string
}

// AbstractFactory produces one variant of each product. Implementations
// return newly constructed instances on every call.
type AbstractFactory interface {
	CreateProductA() AbstractProductA
	CreateProductB() AbstractProductB
}
