// Package loader registers HTTP features on the fiber app.
//
// A feature exposes a name, an enabled switch and a Load hook that mounts its
// routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll loads enabled features in registration order and stops at
// the first failure. The start command registers manifest, inventory and
// integrity.
package loader
