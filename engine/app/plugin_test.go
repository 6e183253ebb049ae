package app

import (
	"errors"
	"slices"
	"testing"

	"github.com/spaghettifunk/kiln/engine/ecs"
)

type counter struct{ n int }

type namedPlugin struct{ name string }

func (p namedPlugin) Name() string { return p.name }

func (p namedPlugin) Build(b *Builder) *Builder {
	return b.AddSystemFunc(Update, p.name, noop)
}

func TestPluginsCommute(t *testing.T) {
	physics := PluginFunc(func(b *Builder) *Builder {
		return b.
			InsertResource(&counter{}).
			AddSystemFunc(Update, "integrate", noop)
	})
	render := PluginFunc(func(b *Builder) *Builder {
		return b.AddSystemFunc(Render, "draw", noop)
	})

	contents := func(plugins ...Plugin) map[ecs.Label][]string {
		b := NewBuilder().AddPlugins(plugins...)
		if err := b.Err(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := make(map[ecs.Label][]string)
		for _, label := range b.state.schedules.Labels() {
			s, _ := b.state.schedules.Get(label)
			out[label] = s.SystemNames()
		}
		if !HasResource[*counter](b) {
			t.Fatal("plugin resource missing")
		}
		return out
	}

	ab := contents(physics, render)
	ba := contents(render, physics)
	for label, names := range ab {
		if !slices.Equal(names, ba[label]) {
			t.Errorf("schedule %s differs: %v vs %v", label, names, ba[label])
		}
	}
}

func TestPluginUnknownSchedule(t *testing.T) {
	b := NewBuilder().AddPlugin(PluginFunc(func(b *Builder) *Builder {
		return b.AddSystemFunc("Physics", "step", noop)
	}))
	if _, err := b.SetRunner(noopRunner).Build(); !errors.Is(err, ecs.ErrUnknownSchedule) {
		t.Fatalf("expected ErrUnknownSchedule, got %v", err)
	}
}

func TestDuplicateNamedPlugin(t *testing.T) {
	b := NewBuilder().AddPlugins(namedPlugin{"audio"}, namedPlugin{"audio"})
	if !errors.Is(b.Err(), ErrDuplicatePlugin) {
		t.Fatalf("expected ErrDuplicatePlugin, got %v", b.Err())
	}
	s, _ := b.state.schedules.Get(Update)
	if names := s.SystemNames(); !slices.Equal(names, []string{"audio"}) {
		t.Errorf("systems = %v, want [audio]", names)
	}

	// Anonymous plugins may repeat.
	b = NewBuilder()
	for i := 0; i < 2; i++ {
		b = b.AddPlugin(PluginFunc(func(b *Builder) *Builder { return b }))
	}
	if err := b.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidPlugin(t *testing.T) {
	b := NewBuilder().AddPlugin(nil)
	if !errors.Is(b.Err(), ErrInvalidPlugin) {
		t.Errorf("nil plugin: expected ErrInvalidPlugin, got %v", b.Err())
	}

	b = NewBuilder().AddPlugin(PluginFunc(func(*Builder) *Builder { return nil }))
	if !errors.Is(b.Err(), ErrInvalidPlugin) {
		t.Errorf("nil builder: expected ErrInvalidPlugin, got %v", b.Err())
	}
}
