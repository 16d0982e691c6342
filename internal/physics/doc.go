// Package physics implements the gravitational step used by every host.
//
// Each call to [Engine.Step] advances all bodies by one unit time step:
//
//   - pairwise inverse-square attraction, suppressed below [DefaultCutoff]
//   - explicit velocity then position update (a = F/m)
//   - reflection off the screen edges scaled by the body's rebound factor
//   - the new position is pushed onto the body's bounded trace
//
// The step is plain arithmetic over valid state and has no error paths.
//
//	eng, _ := physics.NewEngine(9.8, 1920, 1080)
//	for running {
//	    eng.Step(bodies)
//	}
package physics
