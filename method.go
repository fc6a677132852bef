package selfcore

// Method is an object with an attached ordered list of code nodes (spec
// 3.4). Its slot 0 is always a parent-flagged argument slot: "self" for
// a regular method, "(parent)" for a block method; slots 1..N are the
// method's remaining argument slots in selector order; anything after
// that is a local.
type Method struct {
	Object
	Code    []*Node
	IsBlock bool
}

// selfSlotName is the name spec 3.4 gives slot 0 of a regular method.
const selfSlotName = "self"

// parentSlotName is the name spec 3.4 gives slot 0 of a block method.
const parentSlotName = "(parent)"

// NewRegularMethod creates an empty regular method with its slot 0
// ("self") already in place.
func NewRegularMethod() *Method {
	m := &Method{}
	m.AddParentArgument(selfSlotName, nil)
	return m
}

// NewBlockMethod creates an empty block method with its slot 0
// ("(parent)") already in place.
func NewBlockMethod() *Method {
	m := &Method{IsBlock: true}
	m.AddParentArgument(parentSlotName, nil)
	return m
}

// ArgNames returns the names of the method's declared argument slots
// after slot 0, in selector order.
func (m *Method) ArgNames() []string {
	var names []string
	for _, s := range m.slots[1:] {
		if s.Kind != Argument {
			break
		}
		names = append(names, s.Name)
	}
	return names
}

// insertArgSlotsAfterSelf splices argument slots in right after slot 0,
// ahead of whatever slots the method already has. It backs the parser's
// inline-parameter synthesis (spec 4.3): a constant slot whose selector
// carries parameter names (e.g. "at: x Put: y = (...)") gets those names
// injected as the resulting method's argument list.
func (m *Method) insertArgSlotsAfterSelf(args []*Slot) {
	rest := append([]*Slot{}, m.slots[1:]...)
	m.slots = m.slots[:1]
	m.slots = append(m.slots, args...)
	m.slots = append(m.slots, rest...)
	m.index = make(map[string]int, len(m.slots))
	for i, s := range m.slots {
		m.index[s.Name] = i
	}
}

// Clone clones the method's slots the way Object.Clone does (data and
// argument slots copied, constants shared) while sharing its code list,
// per spec 4.2.1 step 1: "Clone the method. The clone's slots are
// independent but its code list is shared."
func (m *Method) Clone() *Method {
	return &Method{Object: *m.Object.Clone(), Code: m.Code, IsBlock: m.IsBlock}
}
