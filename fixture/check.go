package fixture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zephyrtronium/selfobj"
)

// Check operations.
const (
	// OpEvaluate evaluates the object and prints the result.
	OpEvaluate = "evaluate"
	// OpCopy copies the object. If the check has a message, it is sent to the
	// copy and the result printed; otherwise the copy itself is printed.
	OpCopy = "copy"
	// OpSend sends the message to the object and prints the result.
	OpSend = "send"
	// OpSendWith sends the message to the object with the parameter object and
	// prints the result.
	OpSendWith = "sendWith"
	// OpPrint prints the object.
	OpPrint = "print"
)

// Check is one expected-versus-actual comparison against a graph.
type Check struct {
	// Name is an optional label for the check.
	Name string `yaml:"name"`
	// Op is the operation to perform.
	Op string `yaml:"op"`
	// Object is the name of the object on which to perform Op.
	Object string `yaml:"object"`
	// Message is the message to send, for ops that send one.
	Message string `yaml:"message"`
	// Parameter is the name of the object to pass with OpSendWith.
	Parameter string `yaml:"parameter"`
	// Want is the expected printed result. If it is nil, any successful
	// result passes.
	Want *string `yaml:"want"`
	// Error, if not empty, means the op is expected to fail with an error
	// containing this text.
	Error string `yaml:"error"`
}

// Result is the outcome of running a check.
type Result struct {
	// Got is the printed result of the op, if it succeeded.
	Got string
	// Err is the error from the op, if it failed.
	Err error
	// Pass is whether the outcome matched the check's expectation.
	Pass bool
}

// Label returns the check's name, or a description of its op if it has none.
func (c *Check) Label() string {
	if c.Name != "" {
		return c.Name
	}
	switch c.Op {
	case OpSend, OpCopy:
		if c.Message != "" {
			return fmt.Sprintf("%s %s %s", c.Op, c.Object, c.Message)
		}
	case OpSendWith:
		return fmt.Sprintf("%s %s %s(%s)", c.Op, c.Object, c.Message, c.Parameter)
	}
	return c.Op + " " + c.Object
}

// Expected returns a description of the expected outcome, or the empty string
// if any successful result passes.
func (c *Check) Expected() string {
	if c.Error != "" {
		return "error: " + c.Error
	}
	if c.Want == nil {
		return ""
	}
	return *c.Want
}

// validate checks that the op is known and that the objects it names exist.
func (c *Check) validate(g *Graph) error {
	switch c.Op {
	case OpEvaluate, OpCopy, OpPrint:
	case OpSend:
		if c.Message == "" {
			return errors.New("send needs a message")
		}
	case OpSendWith:
		if c.Message == "" || c.Parameter == "" {
			return errors.New("sendWith needs a message and a parameter")
		}
		if _, ok := g.objects[c.Parameter]; !ok {
			return fmt.Errorf("unknown parameter object %q", c.Parameter)
		}
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
	if _, ok := g.objects[c.Object]; !ok {
		return fmt.Errorf("unknown object %q", c.Object)
	}
	return nil
}

// Run performs the check against g.
func (c *Check) Run(g *Graph) Result {
	r, err := c.perform(g)
	res := Result{Err: err}
	if err == nil {
		res.Got = r.Print()
	}
	switch {
	case c.Error != "":
		res.Pass = err != nil && strings.Contains(err.Error(), c.Error)
	case err != nil:
		res.Pass = false
	default:
		res.Pass = c.Want == nil || res.Got == *c.Want
	}
	return res
}

func (c *Check) perform(g *Graph) (*selfobj.Object, error) {
	o, ok := g.objects[c.Object]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown object %q", c.Object)
	}
	switch c.Op {
	case OpEvaluate:
		return o.Evaluate()
	case OpCopy:
		cp := o.Copy()
		if c.Message == "" {
			return cp, nil
		}
		return cp.Send(c.Message)
	case OpSend:
		return o.Send(c.Message)
	case OpSendWith:
		p, ok := g.objects[c.Parameter]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown parameter object %q", c.Parameter)
		}
		return o.SendWithParameter(c.Message, p)
	case OpPrint:
		return o, nil
	default:
		return nil, fmt.Errorf("fixture: unknown op %q", c.Op)
	}
}

// RunAll runs every check in the graph in order.
func (g *Graph) RunAll() []Result {
	r := make([]Result, len(g.Checks))
	for i := range g.Checks {
		r[i] = g.Checks[i].Run(g)
	}
	return r
}
