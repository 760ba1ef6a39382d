package lumen

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"
	"slices"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	ctx       *Context
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	entities  map[EntityId]*Entity

	entityIdCounter EntityId

	// Command Buffering
	pendingRemovals []EntityId
}

// NewApp creates a runtime (non designer) app with the default stages.
func NewApp() *App {
	return newApp(NewContext(false))
}

func newApp(ctx *Context) *App {
	app := &App{
		ctx:       ctx,
		stages:    slices.Clone(defaultStages),
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		entities:  make(map[EntityId]*Entity),
	}
	app.addResources(ctx)
	return app
}

func (app *App) Context() *Context { return app.ctx }

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	return app
}

// Update runs every stage once, flushing deferred commands after each stage.
func (app *App) Update() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

// Run performs the given number of updates.
func (app *App) Run(ticks int) {
	app.Logger().Infof("running %d tick(s)", ticks)
	for i := 0; i < ticks; i++ {
		app.Update()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of the given pointer's element type.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingRemovals) == 0 {
		return
	}

	for _, eid := range app.pendingRemovals {
		app.destroyEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]
}

func (app *App) nextEntityId() EntityId {
	app.entityIdCounter += 1
	return app.entityIdCounter
}

// destroyEntity destroys the entity's descendants first, then removes every component
// the entity carries and detaches it.
func (app *App) destroyEntity(eid EntityId) {
	e, ok := app.entities[eid]
	if !ok {
		return
	}

	for _, child := range app.childEntities(e) {
		app.destroyEntity(child.id)
	}

	for _, system := range app.ctx.Systems.All() {
		if !system.HasComponent(e) {
			continue
		}
		if err := system.RemoveComponent(e); err != nil {
			app.Logger().Errorf("removing %s from entity %d: %v", system.ID(), eid, err)
		}
	}

	if parent := e.node.Parent(); parent != nil {
		parent.RemoveChild(e.node)
	}
	delete(app.entities, eid)
	app.Logger().Debugf("entity %d (%s) destroyed", eid, e.Name())
}

// childEntities returns the entities whose node is a direct child of e's node, by id.
func (app *App) childEntities(e *Entity) []*Entity {
	var res []*Entity
	for _, other := range app.entities {
		if other.node.Parent() == e.node {
			res = append(res, other)
		}
	}
	slices.SortFunc(res, func(a, b *Entity) int { return cmp.Compare(a.id, b.id) })
	return res
}
