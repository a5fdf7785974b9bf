package internal

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Object is the basic type of selfobj. Everything is an Object.
//
// Always use NewObject, ObjectWith, or a behavior-specific constructor to
// obtain new objects. Creating objects directly will result in arbitrary
// failures.
//
// Objects are not synchronized. A graph of objects shared between goroutines
// must be guarded by a lock held by the caller for the duration of every
// operation, including sends, which may copy and read any reachable object.
type Object struct {
	// slots is the set of messages to which this object responds.
	slots slotTable
	// parents is the set of slot names followed during lookup.
	parents parentSet
	// behavior determines what the object does when evaluated.
	behavior Behavior

	// id is the object's unique ID.
	id uintptr
}

// SlotEntry is a single named slot, used to create objects with ordered slots.
type SlotEntry struct {
	Name  string
	Value *Object
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// NewObject creates a new plain data object with no slots.
func NewObject() *Object {
	return &Object{behavior: Empty{}, id: nextObject()}
}

// ObjectWith creates a new object with the given slots, parent slot names, and
// behavior. Slots are created in order. A nil behavior is Empty.
func ObjectWith(slots []SlotEntry, parents []string, b Behavior) *Object {
	if b == nil {
		b = Empty{}
	}
	r := &Object{behavior: b, id: nextObject()}
	for _, s := range slots {
		r.AssignSlot(s.Name, s.Value)
	}
	for _, p := range parents {
		r.MakeParent(p)
	}
	return r
}

// Behavior returns the object's behavior.
func (o *Object) Behavior() Behavior {
	return o.behavior
}

// UniqueID returns the object's unique ID. Distinct objects never share an ID,
// even when their contents are identical.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// Copy creates a new object with the same slots, parent slots, and behavior
// as o. The slot table and parent set of the copy are independent of o's, but
// the objects in the slots are shared.
func (o *Object) Copy() *Object {
	return &Object{
		slots:    o.slots.clone(),
		parents:  o.parents.clone(),
		behavior: o.behavior,
		id:       nextObject(),
	}
}

// Evaluate reduces the object to its value according to its behavior.
// Primitive values evaluate to a copy of themselves, primitive functions to
// the result of calling the function on a copy, message sequences to the
// result of the last message sent to a copy, and plain objects to themselves.
// Evaluate never modifies o.
func (o *Object) Evaluate() (*Object, error) {
	return o.behavior.Activate(o)
}

// Print returns a textual representation of the object. Primitive values
// print as their value; all other objects print their slot names in order,
// marking parent slots.
func (o *Object) Print() string {
	if v, ok := o.behavior.(PrimitiveValue); ok {
		return v.String()
	}
	b := strings.Builder{}
	b.WriteString("{ ")
	for _, name := range o.slots.names {
		b.WriteString(name)
		if o.parents.has(name) {
			b.WriteString(" (parent)")
		}
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

// String returns the same as Print.
func (o *Object) String() string {
	return o.Print()
}

// GoString returns a representation of the object including its identity and
// behavior, for debugging.
func (o *Object) GoString() string {
	return fmt.Sprintf("Object#%d(%v)%s", o.id, o.behavior, o.Print())
}

// IsKindOf evaluates whether the object has kind as any of its ancestors
// through parent slots, or is itself kind.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil {
		return false
	}
	found := false
	o.foreachAncestor(func(a *Object) bool {
		found = a == kind
		return !found
	})
	return found
}
