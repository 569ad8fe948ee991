// Package job contains the periodic maintenance tasks run by the web server's cron.
package job

import (
	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/common"
)

// CheckpointJob folds the SQLite write-ahead log into the database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")
	if database.GetDB() == nil {
		return
	}
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
