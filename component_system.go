package lumen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrComponentExists   = errors.New("component already exists")
	ErrComponentNotFound = errors.New("component not found")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrPropertyType      = errors.New("property type mismatch")
	ErrPropertyInternal  = errors.New("property is internal")
)

// Data is a component property bag keyed by property name.
type Data map[string]any

// Component is one system's data attached to one entity.
type Component struct {
	entity  *Entity
	system  *ComponentSystem
	data    Data
	removed bool
}

func (c *Component) Entity() *Entity          { return c.entity }
func (c *Component) System() *ComponentSystem { return c.system }

func (c *Component) Get(name string) (any, bool) {
	v, ok := c.data[name]
	return v, ok
}

// Data returns a copy of the current property values.
func (c *Component) Data() Data {
	return maps.Clone(c.data)
}

// Set validates value against the schema, stores it and notifies set listeners.
// Only exposed properties can be set; internal ones belong to the owning system.
func (c *Component) Set(name string, value any) error {
	if c.removed {
		return fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, c.system.id, c.entity.ID())
	}
	p, ok := c.system.schema.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, c.system.id, name)
	}
	if !p.Exposed {
		return fmt.Errorf("%w: %s.%s", ErrPropertyInternal, c.system.id, name)
	}
	return c.set(p, value)
}

func (c *Component) set(p Property, value any) error {
	name := p.Name
	v, err := normalizeProperty(p, value)
	if err != nil {
		return err
	}

	old := c.data[name]
	c.data[name] = v
	for _, h := range c.system.setHandlers {
		h(c, name, old, v)
	}
	return nil
}

// ComponentInitializer lets a concrete system take over component initialization.
// Implementations usually finish by calling ComponentSystem.InitializeComponentData.
type ComponentInitializer interface {
	InitializeComponent(c *Component, data Data) error
}

type AddHandler func(e *Entity, c *Component)
type SetHandler func(c *Component, name string, oldValue, newValue any)

// RemoveHandler receives the live data of the component being removed.
type RemoveHandler func(e *Entity, data Data)

// ComponentSystem stores the components of one type, keyed by entity.
type ComponentSystem struct {
	id          string
	ctx         *Context
	logger      Logger
	schema      Schema
	initializer ComponentInitializer
	components  map[EntityId]*Component

	addHandlers    []AddHandler
	setHandlers    []SetHandler
	removeHandlers []RemoveHandler
}

// NewComponentSystem creates the system and registers it with ctx.Systems.
// A nil initializer initializes every schema property from data or defaults.
func NewComponentSystem(ctx *Context, id string, schema Schema, initializer ComponentInitializer) *ComponentSystem {
	s := &ComponentSystem{
		id:          id,
		ctx:         ctx,
		logger:      namedLogger(ctx.Logger, id),
		schema:      schema,
		initializer: initializer,
		components:  make(map[EntityId]*Component),
	}
	ctx.Systems.Add(s)
	return s
}

func (s *ComponentSystem) ID() string        { return s.id }
func (s *ComponentSystem) Context() *Context { return s.ctx }
func (s *ComponentSystem) Schema() Schema    { return slices.Clone(s.schema) }

// ExposedProperties lists the properties editors may show and serialize.
func (s *ComponentSystem) ExposedProperties() Schema {
	return s.schema.Exposed()
}

func (s *ComponentSystem) OnAdd(h AddHandler)       { s.addHandlers = append(s.addHandlers, h) }
func (s *ComponentSystem) OnSet(h SetHandler)       { s.setHandlers = append(s.setHandlers, h) }
func (s *ComponentSystem) OnRemove(h RemoveHandler) { s.removeHandlers = append(s.removeHandlers, h) }

func (s *ComponentSystem) AddComponent(e *Entity, data Data) (*Component, error) {
	if _, ok := s.components[e.ID()]; ok {
		return nil, fmt.Errorf("%w: %s on entity %d", ErrComponentExists, s.id, e.ID())
	}

	c := &Component{
		entity: e,
		system: s,
		data:   make(Data),
	}

	var err error
	if s.initializer != nil {
		err = s.initializer.InitializeComponent(c, data)
	} else {
		err = s.InitializeComponentData(c, data, s.schema.Names())
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s on entity %d: %w", s.id, e.ID(), err)
	}

	s.components[e.ID()] = c
	s.logger.Debugf("added to entity %d (%s)", e.ID(), e.Name())

	for _, h := range s.addHandlers {
		h(e, c)
	}
	return c, nil
}

// RemoveComponent fires the remove listeners once and forgets the component.
func (s *ComponentSystem) RemoveComponent(e *Entity) error {
	c, ok := s.components[e.ID()]
	if !ok {
		return fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, s.id, e.ID())
	}

	for _, h := range s.removeHandlers {
		h(e, c.data)
	}
	delete(s.components, e.ID())
	c.removed = true
	s.logger.Debugf("removed from entity %d (%s)", e.ID(), e.Name())
	return nil
}

func (s *ComponentSystem) HasComponent(e *Entity) bool {
	_, ok := s.components[e.ID()]
	return ok
}

func (s *ComponentSystem) Component(e *Entity) (*Component, bool) {
	c, ok := s.components[e.ID()]
	return c, ok
}

// Components returns all components ordered by entity id.
func (s *ComponentSystem) Components() []*Component {
	ids := slices.Sorted(maps.Keys(s.components))
	res := make([]*Component, 0, len(ids))
	for _, id := range ids {
		res = append(res, s.components[id])
	}
	return res
}

// InitializeComponentData assigns each listed property from data, falling back to the
// schema default. Internal properties are written too, and set listeners see every
// initial value.
func (s *ComponentSystem) InitializeComponentData(c *Component, data Data, properties []string) error {
	for _, name := range properties {
		p, ok := s.schema.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownProperty, s.id, name)
		}
		value, ok := data[name]
		if !ok {
			value = p.Default
		}
		if err := c.set(p, value); err != nil {
			return err
		}
	}
	return nil
}
