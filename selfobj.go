/*
Package selfobj implements the object model of the Self programming language.

Self is a prototype-based language: there are no classes, only objects. Every
object holds named references to other objects, called slots, and both
behavior and inheritance arise from looking up slots. An object inherits from
any object stored in one of its slots that is marked as a parent slot. This
package provides the objects themselves and the four operations that give
them meaning: evaluation, copying, message lookup, and message sends with a
parameter. It has no parser; programs are built by constructing objects
directly.

Objects

Objects are created empty with NewObject or with a behavior using one of
NewPrimitive, NewFunction, or NewMessageSequence. Slots are then added with
AssignSlot, and any slot can be marked as a parent with MakeParent.
AssignParentSlot does both.

	five := selfobj.NewPrimitive(5)
	point := selfobj.NewObject()
	point.AssignSlot("x", five)
	point.Print() // "{ x }"

Evaluation

The behavior of an object decides what it evaluates to:

	- a plain object (Empty) evaluates to itself;
	- a PrimitiveValue evaluates to a copy of itself;
	- a PrimitiveFunction evaluates to the result of its Fn applied to a copy
	  of the object;
	- a MessageSequence copies the object, sends each message in the sequence
	  to that copy, and evaluates to the result of the last one.

Messages

Sending a message to an object looks up the slot with the message's name and
evaluates whatever is in it. If the receiver doesn't own the slot, lookup
continues breadth-first through its parent slots: every parent is checked
before any grandparent, and parents at the same depth are checked in the
order they were marked. Each object is checked at most once, so cyclic parent
graphs are fine. A failed lookup returns a *SlotNotFoundError.

	parent := selfobj.NewObject()
	parent.AssignSlot("shared", selfobj.NewPrimitive(10))
	child := selfobj.NewObject()
	child.AssignParentSlot("parent", parent)
	v, err := child.Send("shared") // v prints "10"

There is no call stack. SendWithParameter copies the object it finds, stores
the argument in the copy's "parameter" slot, and evaluates the copy, so a
message sequence can refer to its argument by sending "parameter" to itself.

	identity := selfobj.NewMessageSequence("parameter")
	root := selfobj.NewObject()
	root.AssignSlot("id", identity)
	v, err := root.SendWithParameter("id", selfobj.NewPrimitive(10)) // "10"

Objects are not safe for concurrent use.
*/
package selfobj

import (
	"github.com/zephyrtronium/selfobj/internal"
)

// Object is the basic type of selfobj. Everything is an Object.
//
// Always use NewObject, ObjectWith, or a behavior-specific constructor to
// obtain new objects. Creating objects directly will result in arbitrary
// failures.
type Object = internal.Object

// SlotEntry is a single named slot, used to create objects with ordered slots.
type SlotEntry = internal.SlotEntry

// Behavior determines what an object does when it is evaluated.
type Behavior = internal.Behavior

// Empty is the behavior of plain data objects. They evaluate to themselves.
type Empty = internal.Empty

// PrimitiveValue is the behavior of objects carrying an opaque scalar.
type PrimitiveValue = internal.PrimitiveValue

// A PrimitiveFunction is the behavior of an object wrapping a compiled
// function.
type PrimitiveFunction = internal.PrimitiveFunction

// An Fn is a statically compiled function which can be the behavior of an
// object.
type Fn = internal.Fn

// MessageSequence is the behavior of objects that act like method bodies.
type MessageSequence = internal.MessageSequence

// SlotNotFoundError is the error returned when a message is sent to an object
// that neither has nor inherits a slot by that name.
type SlotNotFoundError = internal.SlotNotFoundError

// ParameterSlot is the name of the slot through which SendWithParameter
// passes its argument.
const ParameterSlot = internal.ParameterSlot

// NewObject creates a new plain data object with no slots.
func NewObject() *Object {
	return internal.NewObject()
}

// ObjectWith creates a new object with the given slots, parent slot names, and
// behavior.
func ObjectWith(slots []SlotEntry, parents []string, b Behavior) *Object {
	return internal.ObjectWith(slots, parents, b)
}

// NewPrimitive creates a new object carrying the primitive value v.
func NewPrimitive(v interface{}) *Object {
	return internal.NewPrimitive(v)
}

// NewFunction creates a new object whose behavior is f.
func NewFunction(f Fn) *Object {
	return internal.NewFunction(f)
}

// NewNamedFunction creates a new object whose behavior is f, using name to
// describe it.
func NewNamedFunction(name string, f Fn) *Object {
	return internal.NewNamedFunction(name, f)
}

// NewMessageSequence creates a new object which sends the given messages to a
// copy of itself when evaluated.
func NewMessageSequence(names ...string) *Object {
	return internal.NewMessageSequence(names...)
}

// PrimitiveValueOf returns the primitive value carried by o, if it has one.
func PrimitiveValueOf(o *Object) (v interface{}, ok bool) {
	return internal.PrimitiveValueOf(o)
}
