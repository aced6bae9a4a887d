// Package redis provides the env-configured go-redis connection used to
// back the broadcast package's Redis Pub/Sub fan-out.
//
// Usage:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// The returned client is verified with a ping; Connect retries per the
// config before giving up.
package redis
