package app

import "fmt"

// Plugin bundles configuration. Build receives the builder in the Incomplete
// phase and returns it, so plugins compose like any other builder call.
type Plugin interface {
	Build(b *Builder) *Builder
}

// NamedPlugin is a Plugin that may be added only once per builder.
type NamedPlugin interface {
	Plugin
	Name() string
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(b *Builder) *Builder

func (f PluginFunc) Build(b *Builder) *Builder {
	return f(b)
}

// AddPlugin applies p to the builder. Plugins that implement NamedPlugin are
// rejected with ErrDuplicatePlugin when their name was already added.
func (b *Builder) AddPlugin(p Plugin) *Builder {
	if !b.configurable() {
		return b
	}
	if p == nil {
		b.state.record(ErrInvalidPlugin)
		return b
	}
	if named, ok := p.(NamedPlugin); ok {
		name := named.Name()
		if _, dup := b.state.plugins[name]; dup {
			b.state.record(fmt.Errorf("%w: %s", ErrDuplicatePlugin, name))
			return b
		}
		b.state.plugins[name] = struct{}{}
	}
	next := p.Build(b)
	if next == nil {
		b.state.record(fmt.Errorf("%w: %T", ErrInvalidPlugin, p))
		return b
	}
	return next
}

// AddPlugins applies each plugin in order.
func (b *Builder) AddPlugins(plugins ...Plugin) *Builder {
	for _, p := range plugins {
		b = b.AddPlugin(p)
	}
	return b
}
