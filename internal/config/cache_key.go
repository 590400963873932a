package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseCatalogKey returns the cache key for the public course catalog.
func (r *CacheKeyStruct) CourseCatalogKey() string {
	return "catalog:courses"
}

var CacheKey = NewCacheKeyStruct()
