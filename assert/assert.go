package assert

import "github.com/voxelarena/skelsim/oerror"

// IsTrue panics with a *oerror.SkelsimError built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
