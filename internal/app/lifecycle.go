package app

// Shutdown gracefully releases all application resources.
func (a *Application) Shutdown() {
	if a.DB != nil {
		a.DB.Close()
	}
}
