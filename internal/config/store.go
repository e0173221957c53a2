package config

// StoreConfig selects where the game-reference cache and roster live.
type StoreConfig struct {
	Backend   string // "memory" or "redis"
	RedisAddr string
}

func loadStore() StoreConfig {
	return StoreConfig{
		Backend:   envOrDefault(envStore, defaultStore),
		RedisAddr: envOrDefault(envRedisAddr, defaultRedisAddr),
	}
}
