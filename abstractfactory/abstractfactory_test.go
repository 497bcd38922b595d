package abstractfactory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_ProductLiterals(t *testing.T) {
	tests := []struct {
		name    string
		factory AbstractFactory
		wantA   string
		wantB   string
	}{
		{
			name:    "family 1",
			factory: NewConcreteFactory1(),
			wantA:   "The result of the product A1.",
			wantB:   "The result of the product B1.",
		},
		{
			name:    "family 2",
			factory: NewConcreteFactory2(),
			wantA:   "The result of the product A2.",
			wantB:   "The result of the product B2.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantA, tt.factory.CreateProductA().UsefulFunctionA())
			assert.Equal(t, tt.wantB, tt.factory.CreateProductB().UsefulFunctionB())
		})
	}
}

// Collaboration is structurally open: a product B accepts a product A from
// any family, and the result interpolates whatever the collaborator returns.
func TestCollaboration_AllFamilyPairings(t *testing.T) {
	factories := map[string]AbstractFactory{
		"1": NewConcreteFactory1(),
		"2": NewConcreteFactory2(),
	}

	for bFamily, bFactory := range factories {
		for aFamily, aFactory := range factories {
			t.Run(fmt.Sprintf("B%s with A%s", bFamily, aFamily), func(t *testing.T) {
				productB := bFactory.CreateProductB()
				productA := aFactory.CreateProductA()

				want := fmt.Sprintf("The result of the B%s collaborating with the (The result of the product A%s.)",
					bFamily, aFamily)
				assert.Equal(t, want, productB.AnotherUsefulFunctionB(productA))
			})
		}
	}
}

func TestFactories_FreshInstancePerCall(t *testing.T) {
	factory := NewConcreteFactory1()

	a1 := factory.CreateProductA()
	a2 := factory.CreateProductA()
	require.NotSame(t, a1, a2, "each CreateProductA call should construct a new instance")
	assert.Equal(t, a1.UsefulFunctionA(), a2.UsefulFunctionA())

	b1 := factory.CreateProductB()
	b2 := factory.CreateProductB()
	require.NotSame(t, b1, b2, "each CreateProductB call should construct a new instance")
	assert.Equal(t, b1.UsefulFunctionB(), b2.UsefulFunctionB())
}

func TestProducts_Idempotent(t *testing.T) {
	factory := NewConcreteFactory2()
	productA := factory.CreateProductA()
	productB := factory.CreateProductB()

	for i := 0; i < 3; i++ {
		assert.Equal(t, "The result of the product A2.", productA.UsefulFunctionA())
		assert.Equal(t, "The result of the product B2.", productB.UsefulFunctionB())
		assert.Equal(t,
			"The result of the B2 collaborating with the (The result of the product A2.)",
			productB.AnotherUsefulFunctionB(productA))
	}
}
