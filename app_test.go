package lumen

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_ContextIsResource(t *testing.T) {
	app := NewApp()

	ctx, ok := Resource[Context](app)
	require.True(t, ok)
	assert.Same(t, app.Context(), ctx)
	assert.False(t, ctx.Designer)
}

func TestApp_SystemInjection(t *testing.T) {
	app := NewApp()
	res := NewMockResource1("injected")
	app.addResources(res)

	var gotRes *MockResource1
	var gotCmd *Commands
	app.UseSystem(System(func(r *MockResource1, cmd *Commands) {
		gotRes = r
		gotCmd = cmd
	}))

	app.Update()

	assert.Same(t, res, gotRes)
	require.NotNil(t, gotCmd)
	assert.Same(t, app, gotCmd.app)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Update() })
}

func TestApp_StageOrder(t *testing.T) {
	app := NewApp()

	var order []string
	app.UseSystem(System(func() { order = append(order, "render") }).InStage(Render))
	app.UseSystem(System(func() { order = append(order, "update") }))
	app.UseSystem(System(func() { order = append(order, "prelude") }).InStage(Prelude))

	app.Run(2)

	assert.Equal(t, []string{"prelude", "update", "render", "prelude", "update", "render"}, order)
}

func TestApp_UnknownStagePanics(t *testing.T) {
	app := NewApp()
	assert.PanicsWithValue(t, "Stage Custom doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Custom"}))
	})
}

func TestApp_EntityHierarchy(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	parent := cmd.AddEntity("parent")
	child := cmd.AddEntity("child")
	assert.True(t, app.Context().Root.HasChild(child.Node()))

	cmd.SetParent(child, parent)
	assert.False(t, app.Context().Root.HasChild(child.Node()))
	assert.True(t, parent.Node().HasChild(child.Node()))

	assert.Equal(t, []*Entity{parent, child}, cmd.Entities())
	assert.NotEqual(t, parent.ID(), child.ID())
}
