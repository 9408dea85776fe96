package sl_test

import (
	"context"
	"fmt"
	"os"

	"github.com/sl-lang/sl"
)

func ExampleEval() {
	stack, err := sl.Eval(context.Background(), `"sum:" println 3 4 + ; println`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(stack[len(stack)-1].Inspect())
	// Output:
	// sum:
	// 7
	// 7
}

func ExampleEval_error() {
	_, err := sl.Eval(context.Background(), `"a" 1 +`)
	fmt.Println(err)
	// Output:
	// type error: unsupported operand types for +: string and int (1:7)
}

func ExampleWithStdout() {
	_, err := sl.Eval(context.Background(), `if 2 1 > { "bigger" println }`, sl.WithStdout(os.Stdout))
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// bigger
}
