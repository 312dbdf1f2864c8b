// Package cache provides the bounded LRU cache that keeps decoded source
// images between runs.
//
//	c := cache.New[string, *image.NRGBA](8)
//	c.Add("photo.png", img)
//	img, ok := c.Get("photo.png")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
