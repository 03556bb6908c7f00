// Package dynamo holds the data model shared by every other package:
//
//   - [Entity]: a metaball or charge (position, velocity, radius)
//   - [Store]: fixed-capacity entity storage with an active prefix
//   - [Box]: origin-centered bounding volume
//   - [Settings]: threshold, render mode, pause flag and frame counter
//
// # Capacity
//
// [MaxEntities] is shared with the fragment shaders (MAX_METABALLS). A store
// can never hold more active entities than that:
//
//	store, err := dynamo.NewStore(cfg.Count)
//	if errors.Is(err, dynamo.ErrTooManyEntities) {
//	    // configuration error, abort startup
//	}
//
// # Thread Safety
//
// Nothing here is synchronized. The tick driver owns the store and settings
// and input callbacks run on the same goroutine between ticks.
package dynamo
