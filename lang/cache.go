package lang

import (
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// segmentCache stores segmented documents keyed by (origin, content hash).
// Segmentation is pure, so a document included from several places is only
// tokenized once per process.
//
//nolint:gochecknoglobals
var segmentCache sync.Map

// cacheKey derives the cache key for a source document. The content hash
// uses xxh3 for speed; origin is part of the key because nodes record it.
func cacheKey(origin, content string) string {
	hash := xxh3.HashString(content)

	return origin + ":" + strconv.FormatUint(hash, 36)
}

// SegmentCached segments content as [Segment] does, consulting a
// process-wide cache first. The returned document is shared; callers must
// not mutate it. Parse failures are not cached.
func SegmentCached(content, origin string) (Document, error) {
	key := cacheKey(origin, content)

	if cached, ok := segmentCache.Load(key); ok {
		return cached.(Document), nil
	}

	doc, err := Segment(content, origin)
	if err != nil {
		return nil, err
	}

	segmentCache.Store(key, doc)

	return doc, nil
}

// PurgeCache drops all cached segment results.
func PurgeCache() {
	segmentCache.Range(func(key, _ any) bool {
		segmentCache.Delete(key)

		return true
	})
}
