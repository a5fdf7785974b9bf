// Package testutils provides utilities for testing selfobj object graphs.
package testutils

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/selfobj"
)

// A SendTestCase is a test case containing a message send and a predicate to
// check the result.
type SendTestCase struct {
	// Receiver is the object to which the message is sent.
	Receiver *selfobj.Object
	// Message is the name of the message to send.
	Message string
	// Parameter, if not nil, is sent with the message using
	// SendWithParameter.
	Parameter *selfobj.Object
	// Pass is a predicate taking the result of the send. If Pass returns
	// false, then the test fails.
	Pass func(result *selfobj.Object, err error) bool
}

// TestFunc returns a test function for the test case.
func (c SendTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		var r *selfobj.Object
		var err error
		if c.Parameter != nil {
			r, err = c.Receiver.SendWithParameter(c.Message, c.Parameter)
		} else {
			r, err = c.Receiver.Send(c.Message)
		}
		if !c.Pass(r, err) {
			if err != nil {
				t.Errorf("send %q produced wrong result; got error %v", c.Message, err)
			} else {
				t.Errorf("send %q produced wrong result; got %s (%#v)", c.Message, r.Print(), r)
			}
		}
	}
}

// PassPrint returns a Pass function for a SendTestCase that predicates on the
// printed form of the result. If err is not nil, then the predicate returns
// false.
func PassPrint(want string) func(*selfobj.Object, error) bool {
	return func(result *selfobj.Object, err error) bool {
		if err != nil {
			return false
		}
		return result.Print() == want
	}
}

// PassIdentical returns a Pass function for a SendTestCase that predicates on
// identity equality, i.e. the result must be exactly the given object. If err
// is not nil, then the predicate returns false.
func PassIdentical(want *selfobj.Object) func(*selfobj.Object, error) bool {
	return func(result *selfobj.Object, err error) bool {
		if err != nil {
			return false
		}
		return want == result
	}
}

// PassSlotNotFound returns a Pass function for a SendTestCase that returns
// true iff the send failed with a *selfobj.SlotNotFoundError naming the given
// slot.
func PassSlotNotFound(name string) func(*selfobj.Object, error) bool {
	return func(result *selfobj.Object, err error) bool {
		var e *selfobj.SlotNotFoundError
		if !errors.As(err, &e) {
			return false
		}
		return e.Name == name
	}
}

// PassSuccess returns a Pass function for a SendTestCase that returns true iff
// the send did not fail.
func PassSuccess() func(*selfobj.Object, error) bool {
	return func(result *selfobj.Object, err error) bool {
		return err == nil
	}
}

// CheckSlots is a testing helper to check whether an object has exactly the
// slots we expect, in order.
func CheckSlots(t *testing.T, obj *selfobj.Object, slots []string) {
	t.Helper()
	have := obj.SlotNames()
	checked := make(map[string]bool, len(slots))
	for i, name := range slots {
		checked[name] = true
		v, ok := obj.LocalSlot(name)
		if !ok {
			t.Error("no slot", name)
			continue
		}
		if v == nil {
			t.Error("slot", name, "is nil")
		}
		if i < len(have) && have[i] != name {
			t.Errorf("wrong slot at %d: want %q, have %q", i, name, have[i])
		}
	}
	for _, name := range have {
		if !checked[name] {
			t.Error("unexpected slot", name)
		}
	}
}

// CheckParents is a testing helper to check whether an object has exactly the
// parent marks we expect, in order.
func CheckParents(t *testing.T, obj *selfobj.Object, parents []string) {
	t.Helper()
	have := obj.ParentNames()
	if len(have) != len(parents) {
		t.Errorf("wrong parents: want %q, have %q", parents, have)
		return
	}
	for i := range parents {
		if have[i] != parents[i] {
			t.Errorf("wrong parent at %d: want %q, have %q", i, parents[i], have[i])
		}
	}
}

// Chain creates n plain objects, each having the next as its parent slot named
// "parent". The last object has no parents. The first object is the leaf.
func Chain(n int) []*selfobj.Object {
	r := make([]*selfobj.Object, n)
	for i := n - 1; i >= 0; i-- {
		r[i] = selfobj.NewObject()
		if i < n-1 {
			r[i].AssignParentSlot("parent", r[i+1])
		}
	}
	return r
}
