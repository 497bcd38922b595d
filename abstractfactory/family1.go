package abstractfactory

import "fmt"

// ConcreteProductA1 is the family-1 variant of product A.
type ConcreteProductA1 struct{}

func (p *ConcreteProductA1) UsefulFunctionA() string {
	return "The result of the product A1."
}

// ConcreteProductB1 is the family-1 variant of product B.
type ConcreteProductB1 struct{}

func (p *ConcreteProductB1) UsefulFunctionB() string {
	return "The result of the product B1."
}

// AnotherUsefulFunctionB folds the collaborator's result into this product's
// own. The collaborator is not checked for family membership.
func (p *ConcreteProductB1) AnotherUsefulFunctionB(collaborator AbstractProductA) string {
	result := collaborator.UsefulFunctionA()
	return fmt.Sprintf("The result of the B1 collaborating with the (%s)", result)
}

// ConcreteFactory1 produces family-1 products exclusively.
type ConcreteFactory1 struct{}

// NewConcreteFactory1 returns a factory for product family 1.
func NewConcreteFactory1() *ConcreteFactory1 {
	return &ConcreteFactory1{}
}

func (f *ConcreteFactory1) CreateProductA() AbstractProductA {
	return &ConcreteProductA1{}
}

func (f *ConcreteFactory1) CreateProductB() AbstractProductB {
	return &ConcreteProductB1{}
}
