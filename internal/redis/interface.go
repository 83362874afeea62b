package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on this
// package rather than on go-redis directly
type Client interface {
	redis.UniversalClient
}

// Nil is returned by the client when a key does not exist
var Nil = redis.Nil
