package dbprep

import (
	"fmt"
	"os"

	"github.com/gomodule/redigo/redis"
)

// ClearCache flushes everything from the Redis cache.  It opens
// its own short-lived connection so it can run before (or
// without) the storage package connecting.
func ClearCache() error {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	conn, err := redis.DialURL(url)
	if err != nil {
		return fmt.Errorf("Couldn't connect to cache at %q: %v", url, err)
	}
	defer conn.Close()
	if _, err := conn.Do("FLUSHALL"); err != nil {
		return fmt.Errorf("Cache flush failed: %v", err)
	}
	return nil
}
