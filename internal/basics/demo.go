// Package basics walks through core language features on the console. It is
// purely illustrative: running it reads nothing and changes nothing.
package basics

import (
	"context"
	"fmt"
	"io"
)

// User is the struct demo subject.
type User struct {
	Username    string
	Email       string
	SignInCount uint64
	Active      bool
}

// AccountStatus is the enum demo subject.
type AccountStatus int

const (
	StatusActive AccountStatus = iota
	StatusInactive
	StatusLocked
)

func (s AccountStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	case StatusLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Demo prints a tour of variables, functions, structs, enums and the
// built-in collection types.
type Demo struct {
	out io.Writer
}

// NewDemo creates the language feature demo.
func NewDemo(out io.Writer) *Demo {
	return &Demo{out: out}
}

// Run prints every demo section in order.
func (d *Demo) Run(_ context.Context) error {
	fmt.Fprintln(d.out, "\nGO BASICS DEMO")
	fmt.Fprintln(d.out, "==============")
	fmt.Fprintln(d.out)

	d.variables()
	d.functions()
	d.structs()
	d.enums()
	d.collections()

	return nil
}

func (d *Demo) variables() {
	const immutable = 5
	mutable := 10

	fmt.Fprintln(d.out, "Variables Demo:")
	fmt.Fprintf(d.out, "  Constant: %d, Variable: %d\n", immutable, mutable)

	mutable = 15
	fmt.Fprintf(d.out, "  Updated variable: %d\n", mutable)
}

func (d *Demo) functions() {
	fmt.Fprintln(d.out, "\nFunctions Demo:")

	q, r := divmod(22, 3)
	fmt.Fprintf(d.out, "  22 divided by 3 is %d remainder %d\n", q, r)

	a, b := swap("hello", "world")
	fmt.Fprintf(d.out, "  Swapped: %s %s\n", a, b)
}

func (d *Demo) structs() {
	fmt.Fprintln(d.out, "\nStruct Demo:")

	user := User{
		Username:    "alice",
		Email:       "alice@example.com",
		SignInCount: 1,
		Active:      true,
	}

	fmt.Fprintf(d.out, "  User: %s, %s\n", user.Username, user.Email)
}

func (d *Demo) enums() {
	fmt.Fprintln(d.out, "\nEnum and Switch Demo:")

	status := StatusActive
	switch status {
	case StatusActive:
		fmt.Fprintln(d.out, "  Account is active")
	case StatusInactive:
		fmt.Fprintln(d.out, "  Account is inactive")
	case StatusLocked:
		fmt.Fprintln(d.out, "  Account is locked")
	}
}

func (d *Demo) collections() {
	fmt.Fprintln(d.out, "\nCollection Types Demo:")

	numbers := []int{1, 2, 3, 4, 5}
	numbers = append(numbers, 6)
	fmt.Fprintf(d.out, "  Slice: %v\n", numbers)

	// fmt prints map keys in sorted order, so this line is deterministic
	scores := map[string]int{
		"Blue": 10,
		"Red":  50,
	}
	fmt.Fprintf(d.out, "  Map: %v\n", scores)
}

// divmod returns both the quotient and the remainder, the usual shape for
// functions with more than one result.
func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func swap(a, b string) (string, string) {
	return b, a
}
