package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/models"
)

// GenerateReceipt renders the payment receipt PDF sent to the patient after
// a confirmed payment. Names come from the appointment snapshots, so the
// receipt matches what was true at booking time.
func GenerateReceipt(ap *models.Appointment, currency string) ([]byte, error) {
	doc, err := domain.ParseDoctorSnapshot(ap.DoctorSnapshot)
	if err != nil {
		return nil, err
	}
	patient, err := domain.ParsePatientSnapshot(ap.PatientSnapshot)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Appointment Payment Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(55, 8, label)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Receipt reference:", ap.Reference)
	line("Patient:", patient.Name)
	line("Doctor:", doc.Name)
	line("Speciality:", doc.Speciality)
	line("Date:", ap.SlotDate)
	line("Time:", ap.SlotTime)
	line("Amount paid:", fmt.Sprintf("%.2f %s", ap.Amount, currency))
	line("Paid via:", ap.PaymentProvider)

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, "Keep this receipt for your records.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
