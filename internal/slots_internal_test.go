package internal

import "testing"

// TestSlotTableClone tests that cloned slot tables do not share storage with
// the original, including spare capacity in the names slice.
func TestSlotTableClone(t *testing.T) {
	a, b := NewObject(), NewObject()
	cases := map[string]func(t *testing.T){
		"empty": func(t *testing.T) {
			var s slotTable
			c := s.clone()
			c.set("x", a)
			if _, ok := s.get("x"); ok {
				t.Error("set on clone of empty table reached the original")
			}
		},
		"spare capacity": func(t *testing.T) {
			s := slotTable{names: make([]string, 0, 8)}
			s.set("x", a)
			c := s.clone()
			c.set("y", b)
			s.set("z", b)
			if c.names[1] != "y" {
				t.Errorf("clone names overwritten: %q", c.names)
			}
			if _, ok := s.get("y"); ok {
				t.Error("clone's slot appeared on the original")
			}
		},
		"remove": func(t *testing.T) {
			var s slotTable
			s.set("x", a)
			s.set("y", b)
			s.set("z", a)
			c := s.clone()
			c.remove("y")
			if len(s.names) != 3 || s.names[1] != "y" || s.names[2] != "z" {
				t.Errorf("remove on clone changed original names: %q", s.names)
			}
			if len(c.names) != 2 || c.names[1] != "z" {
				t.Errorf("wrong clone names after remove: %q", c.names)
			}
		},
	}
	for name, c := range cases {
		t.Run(name, c)
	}
}

// TestParentSetClone tests that cloned parent sets are independent.
func TestParentSetClone(t *testing.T) {
	var s parentSet
	s.add("a")
	c := s.clone()
	c.add("b")
	if s.has("b") || len(s.names) != 1 {
		t.Errorf("add on clone reached original: %q", s.names)
	}
	if !c.has("a") || !c.has("b") {
		t.Errorf("clone missing marks: %q", c.names)
	}
}

// TestUniqueIDs tests that every constructor and Copy produce fresh IDs.
func TestUniqueIDs(t *testing.T) {
	objs := []*Object{
		NewObject(),
		ObjectWith(nil, nil, nil),
		NewPrimitive(1),
		NewPrimitive(1),
		NewNamedFunction("f", func(self *Object) (*Object, error) { return self, nil }),
		NewMessageSequence(),
	}
	objs = append(objs, objs[0].Copy(), objs[2].Copy())
	seen := make(map[uintptr]int, len(objs))
	for i, o := range objs {
		if j, ok := seen[o.UniqueID()]; ok {
			t.Errorf("objects %d and %d share ID %d", j, i, o.UniqueID())
		}
		seen[o.UniqueID()] = i
	}
}

// TestNewMessageSequenceCopiesNames tests that the caller's slice does not
// alias the behavior.
func TestNewMessageSequenceCopiesNames(t *testing.T) {
	names := []string{"a", "b"}
	o := NewMessageSequence(names...)
	names[0] = "changed"
	if m := o.Behavior().(MessageSequence); m[0] != "a" {
		t.Errorf("message sequence aliased caller's names: %q", m)
	}
}
