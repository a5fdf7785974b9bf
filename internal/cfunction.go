package internal

import (
	"reflect"
	"runtime"
)

// An Fn is a statically compiled function which can be the behavior of an
// object. It receives a copy of the object being evaluated, so it may read and
// modify that copy's slots freely, including a parameter slot set by
// SendWithParameter. Its result is the result of the evaluation.
type Fn func(self *Object) (*Object, error)

// A PrimitiveFunction is the behavior of an object wrapping a compiled
// function.
type PrimitiveFunction struct {
	Function Fn
	Name     string
}

// Activate calls the wrapped function on a copy of self.
func (f *PrimitiveFunction) Activate(self *Object) (*Object, error) {
	return f.Function(self.Copy())
}

// String returns the name of the function.
func (f *PrimitiveFunction) String() string {
	return f.Name
}

func (*PrimitiveFunction) isBehavior() {}

// NewFunction creates a new object whose behavior is f. The function's name is
// taken from the Go runtime.
func NewFunction(f Fn) *Object {
	u := reflect.ValueOf(f).Pointer()
	return NewNamedFunction(runtime.FuncForPC(u).Name(), f)
}

// NewNamedFunction creates a new object whose behavior is f, using name to
// describe it. Panics if f is nil.
func NewNamedFunction(name string, f Fn) *Object {
	if f == nil {
		panic("selfobj: nil Fn for primitive function " + name)
	}
	return &Object{
		behavior: &PrimitiveFunction{Function: f, Name: name},
		id:       nextObject(),
	}
}
