package qsim_test

import (
	"fmt"
	"strings"

	"github.com/theapemachine/qsim"
)

func Example() {
	psi, err := qsim.NewStateVector([]float64{1, 0, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	psi, err = qsim.H(psi, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Hadamard on |00>:", strings.TrimSpace(psi.String()))

	bit, psi, err := qsim.MeasureWith(qsim.NewSeededSampler(1), psi, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Measured bit:", bit)
	fmt.Println("Post-measurement state:", strings.TrimSpace(psi.String()))

	// Output:
	// Hadamard on |00>: ψ = (0.70711)|00>   (0.70711)|01>   (0.00000)|10>   (0.00000)|11>
	// Measured bit: 0
	// Post-measurement state: ψ = (0.70711)|00>   (0.70711)|01>   (0.00000)|10>   (0.00000)|11>
}

func ExampleCNOT() {
	psi, _ := qsim.NewStateVector([]float64{0.619, 0.309, 0.722, 0.008})

	psi, err := qsim.CNOT(psi, 0, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(psi.Amplitudes())
	// Output: [0.619 0.008 0.722 0.309]
}

func ExampleTensorProduct() {
	id, _ := qsim.Identity(2)
	x, _ := qsim.NewMatrix([][]float64{{0, 1}, {1, 0}})

	op := qsim.TensorProduct(id, x)
	for i := 0; i < op.Rows(); i++ {
		fmt.Println(op.Row(i))
	}
	// Output:
	// [0 1 0 0]
	// [1 0 0 0]
	// [0 0 0 1]
	// [0 0 1 0]
}
