package tools

// Registry resolves tool names to registered tools. Registration order is
// preserved for display.
type Registry struct {
	order []string
	byName map[string]Tool
}

// NewRegistry returns a registry holding all built-in tools.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Tool)}
	r.register(base64Tool())
	r.register(diffTool())
	r.register(timestampTool())
	r.register(ipgenTool())
	r.register(passwordTool())
	r.register(uuidTool())
	r.register(unicodeTool())
	return r
}

func (r *Registry) register(t Tool) {
	if _, dup := r.byName[t.Name]; dup {
		panic("tools: duplicate registration of " + t.Name)
	}
	r.order = append(r.order, t.Name)
	r.byName[t.Name] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns the tools in registration order.
func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
