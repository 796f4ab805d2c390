package cliglue

import (
	"strings"
	"time"

	"github.com/napalu/cliglue/types"
	"github.com/napalu/cliglue/types/orderedmap"
)

// Slot is a named, typed value an Action needs. Slots are matched against binding names, which
// are derived from WithName or from the longest keyword of a rule in snake case. A List slot
// takes the slice bound by a repeatable parameter or a collector; Type is its element type.
type Slot struct {
	Name     string
	Type     types.ValueType
	Required bool
	List     bool
}

// Need declares a required slot
func Need(name string, valueType types.ValueType) Slot {
	return Slot{Name: name, Type: valueType, Required: true}
}

// Want declares an optional slot
func Want(name string, valueType types.ValueType) Slot {
	return Slot{Name: name, Type: valueType}
}

// NeedList declares a required slot for a slice of values
func NeedList(name string, valueType types.ValueType) Slot {
	return Slot{Name: name, Type: valueType, Required: true, List: true}
}

// WantList declares an optional slot for a slice of values
func WantList(name string, valueType types.ValueType) Slot {
	return Slot{Name: name, Type: valueType, List: true}
}

// String renders the slot type as int or []int
func (s Slot) String() string {
	return typeName(s.Type, s.List)
}

func typeName(valueType types.ValueType, list bool) string {
	if list {
		return "[]" + valueType.String()
	}

	return valueType.String()
}

// Action is a handle to a unit of work selected by resolution. An Action with slots receives a
// Binding restricted to those names, and Build verifies every required slot can be satisfied
// by a rule on the action's path.
type Action struct {
	name  string
	slots []Slot
	run   RunFunc
}

// NewAction creates a named action. The name appears in definition errors only.
func NewAction(name string, run RunFunc, slots ...Slot) *Action {
	return &Action{name: name, run: run, slots: slots}
}

// Name returns the action name
func (a *Action) Name() string {
	return a.name
}

// Slots returns the declared slots
func (a *Action) Slots() []Slot {
	return a.slots
}

// Invoke runs the action with b
func (a *Action) Invoke(b *Binding) error {
	if a.run == nil {
		return nil
	}

	return a.run(b)
}

func (a *Action) restrict(values *orderedmap.OrderedMap[string, any]) *orderedmap.OrderedMap[string, any] {
	if len(a.slots) == 0 {
		return values
	}
	restricted := orderedmap.NewOrderedMap[string, any]()
	for _, slot := range a.slots {
		if v, found := values.Get(slot.Name); found {
			restricted.Set(slot.Name, v)
		}
	}

	return restricted
}

// Binding is the immutable outcome of one resolution pass: the selected action, the
// sub-command path and the typed values by binding name.
type Binding struct {
	tree    *Tree
	frames  []int
	values  *orderedmap.OrderedMap[string, any]
	action  *Action
	args    []string
	primary string
}

// Action returns the selected action
func (b *Binding) Action() *Action {
	return b.action
}

// Path returns the keywords of the sub-commands descended into, outermost first
func (b *Binding) Path() []string {
	path := make([]string, 0, len(b.frames))
	for _, idx := range b.frames[1:] {
		path = append(path, b.tree.nodes[idx].rule.keywords[0])
	}

	return path
}

// CommandPath returns Path joined with spaces
func (b *Binding) CommandPath() string {
	return strings.Join(b.Path(), " ")
}

// Args returns the raw tokens the binding was resolved from
func (b *Binding) Args() []string {
	return b.args
}

// Primary returns the keyword of the primary option which short-circuited resolution, if any
func (b *Binding) Primary() string {
	return b.primary
}

// Names returns every bound name in binding order
func (b *Binding) Names() []string {
	return b.values.Keys()
}

// Has returns true if name is bound
func (b *Binding) Has(name string) bool {
	return b.values.Has(name)
}

// Get returns the value bound to name
func (b *Binding) Get(name string) (any, bool) {
	return b.values.Get(name)
}

// String returns the string bound to name, or "" when absent or of another type
func (b *Binding) String(name string) string {
	v, _ := Value[string](b, name)
	return v
}

// Int returns the int bound to name, or 0. Counting flags bind int.
func (b *Binding) Int(name string) int {
	v, _ := Value[int](b, name)
	return v
}

// Float returns the float64 bound to name, or 0
func (b *Binding) Float(name string) float64 {
	v, _ := Value[float64](b, name)
	return v
}

// Bool returns the bool bound to name, or false
func (b *Binding) Bool(name string) bool {
	v, _ := Value[bool](b, name)
	return v
}

// Strings returns the string slice bound to name, or nil
func (b *Binding) Strings(name string) []string {
	v, _ := Value[[]string](b, name)
	return v
}

// Ints returns the int slice bound to name, or nil
func (b *Binding) Ints(name string) []int {
	v, _ := Value[[]int](b, name)
	return v
}

// Time returns the time bound to name, or the zero time
func (b *Binding) Time(name string) time.Time {
	v, _ := Value[time.Time](b, name)
	return v
}

// Duration returns the duration bound to name, or 0
func (b *Binding) Duration(name string) time.Duration {
	v, _ := Value[time.Duration](b, name)
	return v
}

// Value returns the value bound to name as T. ok is false when name is absent or bound to a
// value of another type.
func Value[T any](b *Binding, name string) (T, bool) {
	var zero T
	v, found := b.values.Get(name)
	if !found {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
