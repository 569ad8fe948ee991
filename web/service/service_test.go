package service

import (
	"path/filepath"
	"testing"

	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/database/model"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "medicines.db")))
	t.Cleanup(func() { _ = database.CloseDB() })
}

func addMedicine(t *testing.T, name, barcode string) *model.Medicine {
	t.Helper()
	m := &model.Medicine{
		Name:         name,
		Barcode:      barcode,
		Description:  name + " description",
		Dosage:       "10mg once daily",
		SideEffects:  "Headache",
		Interactions: "Alcohol",
	}
	medicineService := MedicineService{}
	require.NoError(t, medicineService.AddMedicine(m))
	return m
}

func addUser(t *testing.T, email string) *model.User {
	t.Helper()
	userService := UserService{}
	u, err := userService.Signup(email, "password")
	require.NoError(t, err)
	return u
}
