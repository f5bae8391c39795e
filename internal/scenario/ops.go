package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/represent/internal/representation"
	"github.com/born-ml/represent/internal/tensor"
)

// ErrUnknownOperation is returned for operation names not in the registry.
var ErrUnknownOperation = errors.New("scenario: unknown operation")

// ErrBadArgs is returned when an operation receives the wrong number of arguments.
var ErrBadArgs = errors.New("scenario: bad operation arguments")

// Operation applies one step to a representation. In-place operations return
// their receiver.
type Operation func(r *representation.Representation, args []int) (*representation.Representation, error)

type opSpec struct {
	fn    Operation
	usage string
}

type rep = representation.Representation

var registry = map[string]opSpec{}

func register(name, usage string, fn Operation) {
	registry[name] = opSpec{fn: fn, usage: usage}
}

func init() {
	register("ravel", "ravel", noArgs((*rep).Ravel))
	register("flatten", "flatten", noArgs((*rep).Flatten))
	register("copy", "copy", noArgs((*rep).Copy))
	register("T", "T", noArgs((*rep).T))
	register("transpose", "transpose [axes...]", func(r *rep, args []int) (*rep, error) {
		return r.Transpose(args...)
	})
	register("diagonal", "diagonal [offset [axis1 axis2]]", diagonal)
	register("swapaxes", "swapaxes axis1 axis2", twoArgs((*rep).SwapAxes))
	register("moveaxis", "moveaxis src dst", twoArgs((*rep).MoveAxis))
	register("rollaxis", "rollaxis axis start", twoArgs((*rep).RollAxis))
	register("reshape", "reshape dims...", func(r *rep, args []int) (*rep, error) {
		return r.Reshape(args...)
	})
	register("squeeze", "squeeze [axes...]", func(r *rep, args []int) (*rep, error) {
		return r.Squeeze(args...)
	})
	register("expand_dims", "expand_dims axis", oneArg((*rep).ExpandDims))
	register("take", "take indices...", func(r *rep, args []int) (*rep, error) {
		return r.Take(args)
	})
	register("broadcast_to", "broadcast_to dims...", func(r *rep, args []int) (*rep, error) {
		return r.BroadcastTo(tensor.Shape(args))
	})
	register("set_shape", "set_shape dims...", func(r *rep, args []int) (*rep, error) {
		return r, r.SetShape(args...)
	})
	register("flip", "flip axis", oneArg((*rep).Flip))
	register("fliplr", "fliplr", noArgsErr(representation.FlipLR))
	register("flipud", "flipud", noArgsErr(representation.FlipUD))
	register("rot90", "rot90 k", oneArg((*rep).Rot90))
	register("roll", "roll shift [axis]", func(r *rep, args []int) (*rep, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: roll takes shift [axis], got %d args", ErrBadArgs, len(args))
		}
		return r.Roll(args[0], args[1:]...)
	})
	register("atleast_3d", "atleast_3d", noArgs(func(r *rep) *rep { return representation.AtLeast3D(r)[0] }))
	register("to_cartesian", "to_cartesian", noArgsErr((*rep).ToCartesian))
	register("to_spherical", "to_spherical", noArgsErr((*rep).ToSpherical))
}

// Lookup returns the named operation.
func Lookup(name string) (Operation, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return spec.fn, nil
}

// Operations returns the usage line of every registered operation, sorted by name.
func Operations() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	usages := make([]string, len(names))
	for i, name := range names {
		usages[i] = registry[name].usage
	}
	return usages
}

func diagonal(r *rep, args []int) (*rep, error) {
	switch len(args) {
	case 0:
		return r.Diagonal(0, 0, 1)
	case 1:
		return r.Diagonal(args[0], 0, 1)
	case 3:
		return r.Diagonal(args[0], args[1], args[2])
	}
	return nil, fmt.Errorf("%w: diagonal takes [offset [axis1 axis2]], got %d args", ErrBadArgs, len(args))
}

func noArgs(fn func(*rep) *rep) Operation {
	return noArgsErr(func(r *rep) (*rep, error) {
		return fn(r), nil
	})
}

func noArgsErr(fn func(*rep) (*rep, error)) Operation {
	return func(r *rep, args []int) (*rep, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: takes no arguments, got %d", ErrBadArgs, len(args))
		}
		return fn(r)
	}
}

func oneArg(fn func(*rep, int) (*rep, error)) Operation {
	return func(r *rep, args []int) (*rep, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: takes 1 argument, got %d", ErrBadArgs, len(args))
		}
		return fn(r, args[0])
	}
}

func twoArgs(fn func(*rep, int, int) (*rep, error)) Operation {
	return func(r *rep, args []int) (*rep, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: takes 2 arguments, got %d", ErrBadArgs, len(args))
		}
		return fn(r, args[0], args[1])
	}
}
