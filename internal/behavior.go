package internal

import "fmt"

// Behavior determines what an object does when it is evaluated. Every object
// has exactly one behavior: Empty, PrimitiveValue, *PrimitiveFunction, or
// MessageSequence. The set is closed; other packages cannot implement it.
type Behavior interface {
	// Activate evaluates self, which is the object having this behavior.
	Activate(self *Object) (*Object, error)
	// String returns a short description of the behavior.
	String() string

	isBehavior()
}

// Empty is the behavior of plain data objects. They evaluate to themselves.
type Empty struct{}

// Activate returns self.
func (Empty) Activate(self *Object) (*Object, error) {
	return self, nil
}

// String returns "Empty".
func (Empty) String() string {
	return "Empty"
}

func (Empty) isBehavior() {}

// PrimitiveValue is the behavior of objects carrying an opaque scalar. The
// value must be comparable and is never modified; it is shared between an
// object and all its copies.
type PrimitiveValue struct {
	Value interface{}
}

// Activate returns a copy of self, so that slots assigned on the result never
// alias the original holder.
func (PrimitiveValue) Activate(self *Object) (*Object, error) {
	return self.Copy(), nil
}

// String returns the value formatted with fmt.Sprint.
func (v PrimitiveValue) String() string {
	return fmt.Sprint(v.Value)
}

func (PrimitiveValue) isBehavior() {}

// NewPrimitive creates a new object carrying the primitive value v.
func NewPrimitive(v interface{}) *Object {
	return &Object{behavior: PrimitiveValue{Value: v}, id: nextObject()}
}

// PrimitiveValueOf returns the primitive value carried by o, if it has one.
func PrimitiveValueOf(o *Object) (v interface{}, ok bool) {
	p, ok := o.behavior.(PrimitiveValue)
	return p.Value, ok
}
