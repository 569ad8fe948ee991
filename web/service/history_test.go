package service

import (
	"testing"
	"time"

	"github.com/druglens/druglens/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryIsPerUser(t *testing.T) {
	setup(t)
	alice := addUser(t, "alice@example.com")
	bob := addUser(t, "bob@example.com")
	para := addMedicine(t, "Paracetamol", "QR0001")
	ibu := addMedicine(t, "Ibuprofen", "QR0002")

	historyService := HistoryService{}
	require.NoError(t, historyService.Record(alice.Id, para.Id))
	require.NoError(t, historyService.Record(bob.Id, ibu.Id))
	require.NoError(t, historyService.Record(alice.Id, ibu.Id))

	records, err := historyService.GetUserHistory(alice.Id)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Paracetamol", records[0].Name)
	assert.Equal(t, "Paracetamol description", records[0].Description)
	assert.Equal(t, "Ibuprofen", records[1].Name)

	records, err = historyService.GetUserHistory(bob.Id)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ibuprofen", records[0].Name)

	records, err = historyService.GetUserHistory(bob.Id + alice.Id + 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistorySearchDateFormat(t *testing.T) {
	setup(t)
	u := addUser(t, "alice@example.com")
	m := addMedicine(t, "Losartan", "QR0009")

	historyService := HistoryService{}
	require.NoError(t, historyService.Record(u.Id, m.Id))

	records, err := historyService.GetUserHistory(u.Id)
	require.NoError(t, err)
	require.Len(t, records, 1)
	_, err = time.Parse(model.SearchDateLayout, records[0].SearchDate)
	assert.NoError(t, err)
}
