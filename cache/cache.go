package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache is a package used for immutable objects that are expensive
// enough to build once and reuse for the life of the process: blank board
// templates for a given dimension, per-dimension adjacency tables, and the
// like. Cached objects are shared; callers must treat them as read-only
// and copy before mutating.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(key string, loadFunc loadFunc) (interface{}, error) {

	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]interface{})}
}

var createOnce sync.Once

// Load fetches the object under key, building it with loadFunc on first
// use. Concurrent callers are safe; loadFunc runs under the cache lock.
func Load(key string, loadFunc loadFunc) (interface{}, error) {
	createOnce.Do(CreateGlobalObjectCache)
	return GlobalObjectCache.get(key, loadFunc)
}
