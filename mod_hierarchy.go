package lumen

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(TransformHierarchySystem).
			InStage(PostUpdate),
	)
}

// TransformHierarchySystem refreshes world matrices from the root down, so child nodes
// such as light nodes follow their entity.
func TransformHierarchySystem(ctx *Context) {
	ctx.Root.SyncHierarchy()
}
