package launch

import "strings"

// Invocation is a program with its arguments and the directory to run it
// in. It is immutable once built.
type Invocation struct {
	args []string
	dir  string
}

// NewInvocation builds an Invocation. args[0] is the program.
func NewInvocation(dir string, args ...string) Invocation {
	return Invocation{
		args: append([]string(nil), args...),
		dir:  dir,
	}
}

// Args returns a copy of the program and its arguments.
func (i Invocation) Args() []string {
	return append([]string(nil), i.args...)
}

// Dir returns the working directory.
func (i Invocation) Dir() string {
	return i.dir
}

// String joins the arguments with spaces.
func (i Invocation) String() string {
	return strings.Join(i.args, " ")
}
