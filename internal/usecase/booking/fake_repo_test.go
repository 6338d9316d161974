package booking

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRepo is an in-memory Repository with the same reservation contract as
// the database layer: at most one appointment per (doctor, date, time), the
// loser surfacing as slot_conflict.
type fakeRepo struct {
	mu sync.Mutex

	doctors      map[uint]models.Doctor
	patients     map[uint]models.Patient
	appointments map[uint]models.Appointment
	byReference  map[string]uint
	slots        map[string]uint // slot key -> appointment id

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors:      make(map[uint]models.Doctor),
		patients:     make(map[uint]models.Patient),
		appointments: make(map[uint]models.Appointment),
		byReference:  make(map[string]uint),
		slots:        make(map[string]uint),
	}
}

func slotKey(doctorID uint, date, timeLabel string) string {
	return fmt.Sprintf("%d|%s|%s", doctorID, date, timeLabel)
}

func (r *fakeRepo) addDoctor(d models.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[d.ID] = d
}

func (r *fakeRepo) addPatient(p models.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients[p.ID] = p
}

func (r *fakeRepo) addAppointment(ap models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[ap.ID] = ap
	if ap.Reference != "" {
		r.byReference[ap.Reference] = ap.ID
	}
	if ap.ID >= r.nextID {
		r.nextID = ap.ID
	}
}

func (r *fakeRepo) slotHeld(doctorID uint, date, timeLabel string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, held := r.slots[slotKey(doctorID, date, timeLabel)]
	return held
}

func (r *fakeRepo) stored(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments[id]
}

func (r *fakeRepo) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &d, nil
}

func (r *fakeRepo) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &p, nil
}

func (r *fakeRepo) BookedTimes(ctx context.Context, doctorID uint, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	times := make([]string, 0)
	prefix := fmt.Sprintf("%d|%s|", doctorID, date)
	for key := range r.slots {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			times = append(times, key[len(prefix):])
		}
	}
	return times, nil
}

func (r *fakeRepo) CreateBooked(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(ap.DoctorID, ap.SlotDate, ap.SlotTime)
	if _, held := r.slots[key]; held {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	r.nextID++
	ap.ID = r.nextID
	r.slots[key] = ap.ID
	r.appointments[ap.ID] = *ap
	r.byReference[ap.Reference] = ap.ID
	return nil
}

func (r *fakeRepo) ReleaseSlot(ctx context.Context, doctorID uint, date, timeLabel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, slotKey(doctorID, date, timeLabel))
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentByReference(ctx context.Context, reference string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byReference[reference]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	ap := r.appointments[id]
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) ListAppointmentsForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.PatientID == patientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDoctor(ctx context.Context, doctorID uint, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && (date == "" || ap.SlotDate == date) {
			out = append(out, ap)
		}
	}
	return out, nil
}
