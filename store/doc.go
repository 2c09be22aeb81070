// Package store persists the naming state of assembled beans: which hash
// generation their generated classes were last found under, and the names
// resolved for each role.
//
// Two implementations are provided. MemoryStore keeps records in process.
// RedisStore shares them between servers through Redis:
//
//	s, err := store.NewRedisStore(ctx, store.RedisOptions{URL: "redis://localhost:6379"})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	rec, err := s.Get(ctx, store.Key("claims.jar", "ClaimBean"))
//	if errors.Is(err, store.ErrNotFound) {
//	    // first assembly
//	}
package store
