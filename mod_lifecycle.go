package lumen

const LifetimeSystemId = "lifetime"

const propTimeLeft = "timeLeft"

// LifetimeSystem removes an entity once its "timeLeft" (seconds) runs out.
// It has no initializer of its own, so every property comes from data or the defaults.
type LifetimeSystem struct {
	*ComponentSystem
}

func NewLifetimeSystem(ctx *Context) *LifetimeSystem {
	schema := Schema{
		{
			Name:        propTimeLeft,
			DisplayName: "Time left",
			Description: "Seconds until the entity is removed",
			Type:        PropertyNumber,
			Default:     float32(1),
			Options:     &NumberOptions{Min: 0, Max: 3600, Step: 0.1},
			Exposed:     true,
		},
	}
	return &LifetimeSystem{NewComponentSystem(ctx, LifetimeSystemId, schema, nil)}
}

// LifecycleModule needs TimeModule.
type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewLifetimeSystem(app.ctx))
	app.UseSystem(
		System(lifetimeSystem).
			InStage(PostUpdate),
	)
}

func lifetimeSystem(t *Time, lifetimes *LifetimeSystem, cmd *Commands) {
	dt := float32(t.Dt.Seconds())
	if dt <= 0 {
		return
	}
	for _, c := range lifetimes.Components() {
		left, _ := c.data[propTimeLeft].(float32)
		left -= dt
		if err := c.Set(propTimeLeft, left); err != nil {
			lifetimes.logger.Errorf("entity %d: %v", c.Entity().ID(), err)
			continue
		}
		if left <= 0 {
			lifetimes.logger.Debugf("entity %d expired", c.Entity().ID())
			cmd.RemoveEntity(c.Entity())
		}
	}
}
