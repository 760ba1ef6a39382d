package lumen

type AppBuilder struct {
	config  Config
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{config: DefaultConfig()}
}

func (b *AppBuilder) UseConfig(config Config) *AppBuilder {
	b.config = config
	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build creates the context from the config, installs logging, then the modules in order.
func (b *AppBuilder) Build() *App {
	app := newApp(NewContext(b.config.Designer))
	commands := app.Commands()

	LoggingModule{Prefix: b.config.Logging.Prefix, Debug: b.config.Logging.Debug}.Install(app, commands)
	for _, module := range b.modules {
		module.Install(app, commands)
	}

	app.Logger().Debugf("app built (designer=%v, modules=%d)", b.config.Designer, len(b.modules))
	return app
}
