// Package once guarantees at most one execution of a wrapped function.
//
// [Value], [Arg] and [Do] provide lifetime single-flight: the underlying
// function runs exactly once per wrapper, no matter how many calls arrive
// or what arguments they carry; every caller receives the stored result.
// The first call's outcome is cached even when it is an error, so repeated
// calls replay the same (value, error) pair deterministically.
//
//	loadConfig := once.Value(func() (*Config, error) {
//	    return parseConfig(path)
//	})
//
//	cfg, err := loadConfig() // parses
//	cfg, err = loadConfig()  // cached, parse runs once ever
//
// [Group] provides keyed single-flight for concurrent call deduplication:
// while a call for a key is in flight, other callers with the same key
// block and share its result instead of executing again.
//
//	g := once.NewGroup[*User]()
//	u, err := g.Do("user:123", func() (*User, error) {
//	    return db.GetUser(ctx, "123")
//	})
package once
