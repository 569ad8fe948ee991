// Package seed fills the medicine table with sample records and renders QR
// codes for them.
package seed

import (
	"fmt"

	"github.com/druglens/druglens/database/model"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"
)

const GeneratedCount = 1000

// SampleMedicines carry QR-friendly barcodes QR0001..QR0010.
var SampleMedicines = []model.Medicine{
	{Name: "Paracetamol", Barcode: "QR0001", Description: "Pain reliever and fever reducer.", Dosage: "500mg twice daily", SideEffects: "Nausea, rash", Interactions: "Alcohol, warfarin"},
	{Name: "Ibuprofen", Barcode: "QR0002", Description: "Nonsteroidal anti-inflammatory drug.", Dosage: "400mg thrice daily", SideEffects: "Stomach pain, dizziness", Interactions: "Aspirin, diuretics"},
	{Name: "Amoxicillin", Barcode: "QR0003", Description: "Antibiotic for bacterial infections.", Dosage: "250mg thrice daily", SideEffects: "Diarrhea, headache", Interactions: "Methotrexate, allopurinol"},
	{Name: "Cetirizine", Barcode: "QR0004", Description: "Antihistamine for allergies.", Dosage: "10mg once daily", SideEffects: "Drowsiness, dry mouth", Interactions: "Alcohol, sedatives"},
	{Name: "Metformin", Barcode: "QR0005", Description: "Used for type 2 diabetes.", Dosage: "500mg twice daily", SideEffects: "Nausea, diarrhea", Interactions: "Alcohol, cimetidine"},
	{Name: "Amlodipine", Barcode: "QR0006", Description: "Calcium channel blocker for hypertension.", Dosage: "5mg once daily", SideEffects: "Swelling, fatigue", Interactions: "Simvastatin, diltiazem"},
	{Name: "Atorvastatin", Barcode: "QR0007", Description: "Lowers cholesterol.", Dosage: "10mg once daily", SideEffects: "Muscle pain, nausea", Interactions: "Grapefruit juice, antibiotics"},
	{Name: "Omeprazole", Barcode: "QR0008", Description: "Reduces stomach acid.", Dosage: "20mg once daily", SideEffects: "Headache, abdominal pain", Interactions: "Clopidogrel, methotrexate"},
	{Name: "Losartan", Barcode: "QR0009", Description: "Treats high blood pressure.", Dosage: "50mg once daily", SideEffects: "Dizziness, back pain", Interactions: "Potassium supplements, NSAIDs"},
	{Name: "Azithromycin", Barcode: "QR0010", Description: "Antibiotic for infections.", Dosage: "500mg once daily", SideEffects: "Diarrhea, nausea", Interactions: "Antacids, warfarin"},
}

// GeneratedMedicine returns the i-th synthetic test record (1-based).
func GeneratedMedicine(i int) model.Medicine {
	return model.Medicine{
		Name:         fmt.Sprintf("SampleMed%d", i),
		Barcode:      fmt.Sprintf("%d", 100000000+i),
		Description:  fmt.Sprintf("Sample medicine %d for testing purposes.", i),
		Dosage:       fmt.Sprintf("%dmg every %d hours", i%500+1, i%12+1),
		SideEffects:  fmt.Sprintf("Side effect %d, Side effect %d", i%10+1, i%5+1),
		Interactions: fmt.Sprintf("Interaction %d, Interaction %d", i%7+1, i%3+1),
	}
}

// All returns the named samples followed by n generated records.
func All(n int) []model.Medicine {
	meds := make([]model.Medicine, 0, len(SampleMedicines)+n)
	meds = append(meds, SampleMedicines...)
	for i := 1; i <= n; i++ {
		meds = append(meds, GeneratedMedicine(i))
	}
	return meds
}

// Medicines inserts every medicine whose name is not stored yet and reports
// how many were added. The database must already be initialised.
func Medicines(meds []model.Medicine) (int, error) {
	medicineService := service.MedicineService{}
	added := 0
	for _, m := range meds {
		exists, err := medicineService.ExistsByName(m.Name)
		if err != nil {
			return added, err
		}
		if exists {
			logger.Debugf("medicine already exists: %s", m.Name)
			continue
		}
		if err := medicineService.AddMedicine(&m); err != nil {
			return added, err
		}
		added++
	}
	logger.Infof("seeded %d of %d medicines", added, len(meds))
	return added, nil
}
