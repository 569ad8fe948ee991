package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogsFiltersByLevel(t *testing.T) {
	Info("medicine search hit")
	Warningf("translation failed for %s", "dosage")
	Debug("decoded barcode")

	warnings := GetLogs(10, "WARNING")
	if assert.NotEmpty(t, warnings) {
		assert.True(t, strings.HasSuffix(warnings[0], "translation failed for dosage"))
	}
	for _, l := range warnings {
		assert.NotContains(t, l, "decoded barcode")
		assert.NotContains(t, l, "medicine search hit")
	}

	all := GetLogs(3, "DEBUG")
	assert.Len(t, all, 3)
	assert.Contains(t, all[0], "decoded barcode")
}

func TestGetLogsLimit(t *testing.T) {
	for i := 0; i < 5; i++ {
		Errorf("failure %d", i)
	}
	assert.Len(t, GetLogs(2, "ERROR"), 2)
}
