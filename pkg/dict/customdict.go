// Package dict stores user-supplied vocabulary words in redis, so domain
// terms the training corpus never contained are not flagged as typos.
package dict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const customDictKey = "contextspell:custom_dict"

// CustomDict wraps a redis client holding the custom dictionary set.
type CustomDict struct {
	client *redis.Client
}

func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, customDictKey, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, customDictKey, word).Err()
}

// All returns every word stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, customDictKey).Result()
}
