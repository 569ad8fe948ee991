package job

import (
	"github.com/druglens/druglens/caching"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/common"
)

// TranslationCacheJob logs the translation cache size and empties it once it
// grows past limit.
type TranslationCacheJob struct {
	cache *caching.Cache
	limit int
}

func NewTranslationCacheJob(cache *caching.Cache, limit int) *TranslationCacheJob {
	return &TranslationCacheJob{cache: cache, limit: limit}
}

func (j *TranslationCacheJob) Run() {
	defer common.Recover("translation cache job")
	n := j.cache.ItemCount()
	logger.Debugf("translation cache holds %d entries", n)
	if j.limit > 0 && n > j.limit {
		logger.Infof("translation cache over limit (%d > %d), clearing", n, j.limit)
		j.cache.Clear()
	}
}
