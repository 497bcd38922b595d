package abstractfactory

import "fmt"

// ConcreteProductA2 is the family-2 variant of product A.
type ConcreteProductA2 struct{}

func (p *ConcreteProductA2) UsefulFunctionA() string {
	return "The result of the product A2."
}

// ConcreteProductB2 is the family-2 variant of product B.
type ConcreteProductB2 struct{}

func (p *ConcreteProductB2) UsefulFunctionB() string {
	return "The result of the product B2."
}

func (p *ConcreteProductB2) AnotherUsefulFunctionB(collaborator AbstractProductA) string {
	result := collaborator.UsefulFunctionA()
	return fmt.Sprintf("The result of the B2 collaborating with the (%s)", result)
}

// ConcreteFactory2 produces family-2 products exclusively.
type ConcreteFactory2 struct{}

// NewConcreteFactory2 returns a factory for product family 2.
func NewConcreteFactory2() *ConcreteFactory2 {
	return &ConcreteFactory2{}
}

func (f *ConcreteFactory2) CreateProductA() AbstractProductA {
	return &ConcreteProductA2{}
}

func (f *ConcreteFactory2) CreateProductB() AbstractProductB {
	return &ConcreteProductB2{}
}
