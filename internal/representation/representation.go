// Package representation implements coordinate representations: groups of
// co-shaped, unit-carrying component arrays with optional attached
// differentials that always share the representation's shape.
package representation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/born-ml/represent/internal/tensor"
	"github.com/born-ml/represent/internal/units"
)

// Common errors.
var (
	ErrComponentCount    = errors.New("representation: wrong number of components")
	ErrPhysicalType      = errors.New("representation: component has wrong physical type")
	ErrLatitudeRange     = errors.New("representation: latitude must be within -90 and +90 deg")
	ErrDifferentialShape = errors.New("representation: differential shape must match representation shape")
	ErrDifferentialKind  = errors.New("representation: differential does not match representation")
	ErrKindMismatch      = errors.New("representation: unsupported representation kind")
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the logger used to report shape-assignment rollbacks.
// A nil logger disables logging. It is safe to call while other goroutines
// use representations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Representation is a set of components of one Kind, broadcast to a common
// shape, plus differentials keyed by the variable they are taken against.
//
// Every operation except SetShape returns a new Representation. Each
// representation owns the headers of its differentials: attaching or reading
// a differential shares its arrays but not the Representation value, so
// SetShape reshapes only the receiver and the differentials it holds.
type Representation struct {
	kind  *Kind
	comps []units.Quantity
	diffs map[string]*Representation
}

type options struct {
	noCopy bool
	diffs  []*Representation
}

// Option configures New.
type Option func(*options)

// NoCopy makes New use the given arrays directly instead of copying them
// first. Broadcasting still produces read-only views.
func NoCopy() Option {
	return func(o *options) { o.noCopy = true }
}

// WithDifferentials attaches differentials at construction.
func WithDifferentials(diffs ...*Representation) Option {
	return func(o *options) { o.diffs = append(o.diffs, diffs...) }
}

// New builds a representation of the given kind. Components are matched to
// the kind's components by position and broadcast against each other.
//
// Example:
//
//	lon := units.New(tensor.Arange(0, 24, 4), units.HourAngle)
//	lat := units.New(tensor.Arange(-90, 91, 30), units.Degree)
//	col, _ := lon.Value.Index(tensor.All, tensor.NewAxis)
//	s, err := representation.New(representation.Spherical,
//	    []units.Quantity{units.New(col, lon.Unit), lat, units.ScalarOf(1, units.Kiloparsec)},
//	    representation.NoCopy())
//	// s.Shape() == (6, 7)
func New(kind *Kind, comps []units.Quantity, opts ...Option) (*Representation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(comps) != len(kind.Components) {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrComponentCount, kind, len(kind.Components), len(comps))
	}

	arrays := make([]*tensor.Array, len(comps))
	for i, c := range comps {
		want := kind.Components[i]
		if got := c.Unit.PhysicalType(); got != want.Type {
			return nil, fmt.Errorf("%w: %s.%s must be %s, got %s (%q)",
				ErrPhysicalType, kind, want.Name, want.Type, got, c.Unit)
		}
		arrays[i] = c.Value
		if !o.noCopy {
			arrays[i] = c.Value.Copy()
		}
	}

	broadcast, err := tensor.BroadcastArrays(arrays...)
	if err != nil {
		return nil, fmt.Errorf("%s: components cannot be broadcast: %w", kind, err)
	}
	r := &Representation{kind: kind, comps: make([]units.Quantity, len(comps))}
	for i := range comps {
		r.comps[i] = units.New(broadcast[i], comps[i].Unit)
	}
	if kind.check != nil {
		if err := kind.check(r.comps); err != nil {
			return nil, err
		}
	}

	for _, d := range o.diffs {
		if err := r.attach(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// attach validates d against r and stores it under its derivative key.
func (r *Representation) attach(d *Representation) error {
	if r.kind.IsDifferential() {
		return fmt.Errorf("%w: differentials cannot carry differentials", ErrDifferentialKind)
	}
	if d.kind.Base != r.kind {
		return fmt.Errorf("%w: %s cannot differentiate %s", ErrDifferentialKind, d.kind, r.kind)
	}
	if !d.Shape().Equal(r.Shape()) {
		return fmt.Errorf("%w: %v vs %v", ErrDifferentialShape, d.Shape(), r.Shape())
	}
	key, err := derivativeKey(r.comps, d.comps)
	if err != nil {
		return err
	}
	if r.diffs == nil {
		r.diffs = make(map[string]*Representation)
	}
	r.diffs[key] = d.header()
	return nil
}

// header returns a representation with its own component and differential
// slots over the same arrays as r.
func (r *Representation) header() *Representation {
	out := &Representation{kind: r.kind, comps: append([]units.Quantity(nil), r.comps...)}
	if len(r.diffs) > 0 {
		out.diffs = make(map[string]*Representation, len(r.diffs))
		for key, d := range r.diffs {
			out.diffs[key] = d.header()
		}
	}
	return out
}

// WithDifferentials returns a representation sharing r's components with the
// given differentials added. Existing differentials under the same key are
// replaced.
func (r *Representation) WithDifferentials(diffs ...*Representation) (*Representation, error) {
	out := r.header()
	for _, d := range diffs {
		if err := out.attach(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WithoutDifferentials returns a representation sharing r's components with
// no differentials attached.
func (r *Representation) WithoutDifferentials() *Representation {
	return &Representation{kind: r.kind, comps: append([]units.Quantity(nil), r.comps...)}
}

// Kind returns the representation's kind.
func (r *Representation) Kind() *Kind {
	return r.kind
}

// Shape returns the common shape of all components.
func (r *Representation) Shape() tensor.Shape {
	return shapeOf(r.comps)
}

// NDim returns the number of axes.
func (r *Representation) NDim() int {
	return len(r.Shape())
}

// Size returns the number of coordinates held.
func (r *Representation) Size() int {
	return r.Shape().NumElements()
}

// Component returns the named component.
// Panics if the kind has no such component.
func (r *Representation) Component(name string) units.Quantity {
	i := r.kind.index(name)
	if i < 0 {
		panic(fmt.Sprintf("%s has no component %q", r.kind, name))
	}
	return r.comps[i]
}

// Components returns all components in kind order.
func (r *Representation) Components() []units.Quantity {
	return append([]units.Quantity(nil), r.comps...)
}

// Differential returns the differential stored under key. The result shares
// its arrays with r, but reshaping it in place does not affect r.
func (r *Representation) Differential(key string) (*Representation, bool) {
	d, ok := r.diffs[key]
	if !ok {
		return nil, false
	}
	return d.header(), true
}

// Differentials returns the key-to-differential mapping with the same
// sharing rules as Differential.
func (r *Representation) Differentials() map[string]*Representation {
	out := make(map[string]*Representation, len(r.diffs))
	for k, d := range r.diffs {
		out[k] = d.header()
	}
	return out
}

// String returns a one-line summary, e.g.
// "SphericalRepresentation(6, 7) [lon hourangle, lat deg, distance kpc] differentials=[s]".
func (r *Representation) String() string {
	parts := make([]string, len(r.comps))
	for i, c := range r.comps {
		parts[i] = strings.TrimSpace(r.kind.Components[i].Name + " " + c.Unit.Name)
	}
	s := fmt.Sprintf("%s%v [%s]", r.kind, r.Shape(), strings.Join(parts, ", "))
	if len(r.diffs) > 0 {
		keys := make([]string, 0, len(r.diffs))
		for k := range r.diffs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s += " differentials=[" + strings.Join(keys, ", ") + "]"
	}
	return s
}

// apply runs fn over every component and every attached differential and
// collects the results into a new representation of the same kind.
func (r *Representation) apply(fn func(*tensor.Array) (*tensor.Array, error)) (*Representation, error) {
	out := &Representation{kind: r.kind, comps: make([]units.Quantity, len(r.comps))}
	for i, c := range r.comps {
		q, err := c.Apply(fn)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.kind, r.kind.Components[i].Name, err)
		}
		out.comps[i] = q
	}
	if len(r.diffs) > 0 {
		out.diffs = make(map[string]*Representation, len(r.diffs))
		for key, d := range r.diffs {
			nd, err := d.apply(fn)
			if err != nil {
				return nil, fmt.Errorf("differential %q: %w", key, err)
			}
			out.diffs[key] = nd
		}
	}
	return out, nil
}

// applyView is apply for operations that cannot fail.
func (r *Representation) applyView(fn func(*tensor.Array) *tensor.Array) *Representation {
	out, err := r.apply(func(a *tensor.Array) (*tensor.Array, error) { return fn(a), nil })
	if err != nil {
		panic(err) // fn never fails
	}
	return out
}

// pendingShape is one component's staged reshape.
type pendingShape struct {
	owner *Representation
	index int
	view  *tensor.Array
}

// stageShape computes the in-place views for every component of r and its
// differentials without modifying anything.
func (r *Representation) stageShape(shape []int, staged []pendingShape) ([]pendingShape, error) {
	for i, c := range r.comps {
		v, err := c.Value.ReshapeView(shape...)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.kind, r.kind.Components[i].Name, err)
		}
		staged = append(staged, pendingShape{owner: r, index: i, view: v})
	}
	for key, d := range r.diffs {
		var err error
		staged, err = d.stageShape(shape, staged)
		if err != nil {
			return nil, fmt.Errorf("differential %q: %w", key, err)
		}
	}
	return staged, nil
}

// SetShape changes the shape of r and all its differentials in place without
// copying. Either every component is reshaped or, on error, none is: a total
// size change fails with tensor.ErrSizeMismatch and a shape that would need a
// copy for any component fails with tensor.ErrNotRepresentable. The error
// carries a *tensor.ShapeError with Op "set_shape".
func (r *Representation) SetShape(shape ...int) error {
	staged, err := r.stageShape(shape, nil)
	if err != nil {
		var se *tensor.ShapeError
		if errors.As(err, &se) {
			se.Op = "set_shape"
		}
		logger.Load().Debug("shape assignment rolled back",
			zap.String("kind", r.kind.Name),
			zap.Stringer("shape", r.Shape()),
			zap.Ints("requested", shape),
			zap.Error(err))
		return err
	}
	for _, p := range staged {
		p.owner.comps[p.index].Value = p.view
	}
	return nil
}
