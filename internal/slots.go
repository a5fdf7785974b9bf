package internal

/*
This file contains slots and slot lookup. Lookup is breadth-first over parent
slots: the receiver is checked first, then every object in its parent slots,
then their parents, and so on. The first object that owns the slot directly
wins, so a slot one parent away always shadows a slot two parents away, no
matter which parent was declared first. Among objects at the same depth, the
order in which their children marked them as parents decides.

Each object is queued at most once. An object is recorded in the visited set
at the moment it is queued, not when it is examined, so a graph in which two
objects are each other's parents still terminates, and a diamond does not
examine its top twice.

Parent marks name slots rather than objects. A mark on a name that currently
has no slot is skipped, and it takes effect again if the slot is assigned
later.
*/

import (
	"github.com/zephyrtronium/contains"
)

// slotTable is an insertion-ordered map of slots.
type slotTable struct {
	names []string
	m     map[string]*Object
}

func (t *slotTable) get(name string) (*Object, bool) {
	v, ok := t.m[name]
	return v, ok
}

// set sets a slot. A new name is placed after all existing names; an existing
// name keeps its position.
func (t *slotTable) set(name string, value *Object) {
	if t.m == nil {
		t.m = make(map[string]*Object)
	}
	if _, ok := t.m[name]; !ok {
		t.names = append(t.names, name)
	}
	t.m[name] = value
}

func (t *slotTable) remove(name string) {
	if _, ok := t.m[name]; !ok {
		return
	}
	delete(t.m, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i:i], t.names[i+1:]...)
			return
		}
	}
}

func (t *slotTable) clone() slotTable {
	if len(t.names) == 0 {
		return slotTable{}
	}
	r := slotTable{
		names: make([]string, len(t.names)),
		m:     make(map[string]*Object, len(t.m)),
	}
	copy(r.names, t.names)
	for k, v := range t.m {
		r.m[k] = v
	}
	return r
}

// parentSet is an insertion-ordered set of parent slot names.
type parentSet struct {
	names []string
	m     map[string]struct{}
}

func (s *parentSet) has(name string) bool {
	_, ok := s.m[name]
	return ok
}

func (s *parentSet) add(name string) {
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	if _, ok := s.m[name]; ok {
		return
	}
	s.m[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s *parentSet) clone() parentSet {
	if len(s.names) == 0 {
		return parentSet{}
	}
	r := parentSet{
		names: make([]string, len(s.names)),
		m:     make(map[string]struct{}, len(s.m)),
	}
	copy(r.names, s.names)
	for k := range s.m {
		r.m[k] = struct{}{}
	}
	return r
}

// AssignSlot creates or replaces the slot named name on o. Assigning nil
// removes the slot.
func (o *Object) AssignSlot(name string, value *Object) {
	if value == nil {
		o.slots.remove(name)
		return
	}
	o.slots.set(name, value)
}

// MakeParent marks the slot named name as a parent slot. The slot need not
// exist yet.
func (o *Object) MakeParent(name string) {
	o.parents.add(name)
}

// AssignParentSlot is AssignSlot followed by MakeParent.
func (o *Object) AssignParentSlot(name string, value *Object) {
	o.AssignSlot(name, value)
	o.MakeParent(name)
}

// RemoveSlot removes the slot named name from o, if it exists. A parent mark
// on the name remains and applies again if the slot is reassigned.
func (o *Object) RemoveSlot(name string) {
	o.slots.remove(name)
}

// LocalSlot checks only o's own slots for a slot.
func (o *Object) LocalSlot(name string) (value *Object, ok bool) {
	return o.slots.get(name)
}

// IsParent returns whether name is marked as a parent slot on o.
func (o *Object) IsParent(name string) bool {
	return o.parents.has(name)
}

// SlotNames returns the names of o's slots in the order they were created.
func (o *Object) SlotNames() []string {
	r := make([]string, len(o.slots.names))
	copy(r, o.slots.names)
	return r
}

// ParentNames returns the names marked as parent slots on o in the order they
// were marked, including names that have no slot.
func (o *Object) ParentNames() []string {
	r := make([]string, len(o.parents.names))
	copy(r, o.parents.names)
	return r
}

// Lookup finds the slot named name on o or its ancestors, searching
// breadth-first through parent slots. value is the slot's value, and holder is
// the object which owns the slot. If no reachable object has the slot, the
// error is a *SlotNotFoundError and value and holder are nil. Lookup never
// modifies any object.
func (o *Object) Lookup(name string) (value, holder *Object, err error) {
	if o == nil {
		return nil, nil, &SlotNotFoundError{Name: name}
	}
	// Most sends hit a local slot, so check that before allocating anything.
	if v, ok := o.slots.get(name); ok {
		return v, o, nil
	}
	o.foreachAncestor(func(a *Object) bool {
		if v, ok := a.slots.get(name); ok {
			value, holder = v, a
			return false
		}
		return true
	})
	if holder == nil {
		return nil, nil, &SlotNotFoundError{Name: name}
	}
	return value, holder, nil
}

// foreachAncestor calls exec on o and then on each object reachable through
// resolvable parent slots, in breadth-first order, visiting each object once.
// If exec returns false, then the iteration ceases.
func (o *Object) foreachAncestor(exec func(a *Object) bool) {
	set := contains.Set{}
	set.Add(o.UniqueID())
	queue := []*Object{o}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !exec(cur) {
			return
		}
		for _, name := range cur.parents.names {
			p, ok := cur.slots.get(name)
			if !ok {
				continue
			}
			if set.Add(p.UniqueID()) {
				queue = append(queue, p)
			}
		}
	}
}
