package internal

import "strings"

// ParameterSlot is the name of the slot through which SendWithParameter
// passes its argument.
const ParameterSlot = "parameter"

// MessageSequence is the behavior of objects that act like method bodies. When
// such an object is evaluated, each message is sent in order to the same copy
// of the object, and the result of the last send is the result of the
// evaluation. An empty sequence evaluates to the copy itself.
type MessageSequence []string

// Activate sends each message to a copy of self.
func (m MessageSequence) Activate(self *Object) (*Object, error) {
	c := self.Copy()
	r := c
	for _, name := range m {
		var err error
		r, err = c.Send(name)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// String returns the messages separated by semicolons.
func (m MessageSequence) String() string {
	return "(" + strings.Join(m, "; ") + ")"
}

func (MessageSequence) isBehavior() {}

// NewMessageSequence creates a new object which sends the given messages to a
// copy of itself when evaluated. The names are copied.
func NewMessageSequence(names ...string) *Object {
	m := make(MessageSequence, len(names))
	copy(m, names)
	return &Object{behavior: m, id: nextObject()}
}

// Send looks up the slot named name on o or its ancestors, evaluates the
// object found there, and returns the result. If no such slot exists, the
// error is a *SlotNotFoundError.
func (o *Object) Send(name string) (*Object, error) {
	v, _, err := o.Lookup(name)
	if err != nil {
		return nil, err
	}
	return v.Evaluate()
}

// SendWithParameter looks up the slot named name like Send, but evaluates a
// copy of the object found there with its parameter slot set to parameter.
// This is the only way to pass arguments: a message sequence sees the
// parameter slot throughout its evaluation, because every message in it is
// sent to the same copy. If parameter is nil, the copy keeps whatever parameter
// slot it already has.
func (o *Object) SendWithParameter(name string, parameter *Object) (*Object, error) {
	v, _, err := o.Lookup(name)
	if err != nil {
		return nil, err
	}
	v = v.Copy()
	if parameter != nil {
		v.AssignSlot(ParameterSlot, parameter)
	}
	return v.Evaluate()
}
