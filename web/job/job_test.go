package job

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/druglens/druglens/caching"
	"github.com/druglens/druglens/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointJobRuns(t *testing.T) {
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "medicines.db")))
	defer database.CloseDB()

	assert.NotPanics(t, func() { NewCheckpointJob().Run() })
}

func TestTranslationCacheJobClearsOverLimit(t *testing.T) {
	c := caching.NewCache()
	require.NoError(t, c.Init())
	for i := 0; i < 3; i++ {
		c.SetTranslation("hi", fmt.Sprint("text", i), "अनुवाद")
	}

	NewTranslationCacheJob(c, 5).Run()
	assert.Equal(t, 3, c.ItemCount())

	NewTranslationCacheJob(c, 2).Run()
	assert.Zero(t, c.ItemCount())
}

func TestJobsRecoverFromPanics(t *testing.T) {
	// A nil cache panics inside Run; cron must keep going.
	assert.NotPanics(t, func() { NewTranslationCacheJob(nil, 1).Run() })
}
