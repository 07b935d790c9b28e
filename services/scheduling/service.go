package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "medagenda/database/repository/appointment"
	availabilityRepo "medagenda/database/repository/availability"
	doctorRepo "medagenda/database/repository/doctor"
	"medagenda/models"
	"medagenda/services/notification"
	"medagenda/services/tasks"
	"medagenda/utils"
)

// reminderLead is how long before the slot the reminder push fires.
const reminderLead = time.Hour

// DefaultSchedulingService is the production scheduling engine.
type DefaultSchedulingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Notifier     notification.NotificationService
	Reminders    tasks.ReminderScheduler
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func parseDateKey(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateKeyLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, date)
	}
	return d, nil
}

func (s *DefaultSchedulingService) GetWorkSettings(ctx context.Context, doctorID string) (models.WorkSettings, error) {
	stored, err := s.Availability.GetWorkSettings(ctx, doctorID)
	if err != nil {
		return models.WorkSettings{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if stored == nil {
		settings := DefaultWorkSettings()
		settings.DoctorID = doctorID
		return settings, nil
	}
	return *stored, nil
}

func (s *DefaultSchedulingService) SaveWorkSettings(ctx context.Context, doctorID string, settings models.WorkSettings) (models.WorkSettings, error) {
	if settings.SlotDuration <= 0 {
		settings.SlotDuration = DefaultSlotDuration
	} else if settings.SlotDuration < MinSlotDuration {
		settings.SlotDuration = MinSlotDuration
	}

	// Drop blocks that do not parse or are inverted; reject a settings save
	// that would leave the doctor without a single usable block.
	valid := make([]models.TimeRange, 0, len(settings.Blocks))
	for _, b := range settings.Blocks {
		start, err := ParseTimeOfDay(b.Start)
		if err != nil {
			continue
		}
		end, err := ParseRangeEnd(b.End)
		if err != nil {
			continue
		}
		if end <= start {
			continue
		}
		valid = append(valid, b)
	}
	if len(valid) == 0 {
		return models.WorkSettings{}, fmt.Errorf("%w: settings need at least one valid block", ErrOutOfRange)
	}
	settings.Blocks = DedupSortRanges(valid)

	if settings.WorkingDays == nil {
		settings.WorkingDays = DefaultWorkSettings().WorkingDays
	}
	settings.DoctorID = doctorID
	settings.UpdatedAt = s.now().Unix()

	if err := s.Availability.SaveWorkSettings(ctx, &settings); err != nil {
		return models.WorkSettings{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return settings, nil
}

func (s *DefaultSchedulingService) NormalizeBlocks(blocks []models.TimeRange, slotDuration int) []models.TimeRange {
	return ChainRanges(blocks, slotDuration)
}

func (s *DefaultSchedulingService) GetMasterTemplate(ctx context.Context, doctorID, date string) ([]string, error) {
	day, err := parseDateKey(date)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetWorkSettings(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return GenerateMasterSlots(day, settings), nil
}

func (s *DefaultSchedulingService) GetBookableSlots(ctx context.Context, doctorID, date string) ([]models.SlotView, error) {
	logger := utils.GetLogger()

	day, err := parseDateKey(date)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetWorkSettings(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	override, err := s.Availability.GetDateAvailability(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var legacy *models.WeekSchedule
	accepts := true
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if doctor != nil {
		legacy = doctor.Schedule
		accepts = doctor.AcceptsNewPatients
	}

	slots := ResolveDateSlots(day, settings, override, legacy)
	if len(slots) == 0 {
		// Degrade to an empty day rather than failing the screen, but leave
		// a trace when the stored document had content we could not use.
		if override != nil && (len(override.Slots) > 0 || len(override.Ranges) > 0) {
			logger.Warn("availability document yielded no usable slots",
				zap.String("doctorID", doctorID), zap.String("date", date))
		}
		return []models.SlotView{}, nil
	}

	busy, err := s.computeBusySet(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	views := FilterBookable(slots, day, busy, s.now())
	if !accepts {
		for i := range views {
			views[i].Available = false
		}
	}
	return views, nil
}

func (s *DefaultSchedulingService) SaveDateOverride(ctx context.Context, doctorID, date string, slots []string) (bool, error) {
	if _, err := parseDateKey(date); err != nil {
		return false, err
	}
	for _, slot := range slots {
		if _, err := ParseTimeOfDay(slot); err != nil {
			return false, err
		}
	}

	clean := DedupSortSlots(slots)
	if len(clean) == 0 {
		if err := s.Availability.DeleteDateAvailability(ctx, doctorID, date); err != nil {
			return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return true, nil
	}

	settings, err := s.GetWorkSettings(ctx, doctorID)
	if err != nil {
		return false, err
	}
	doc := &models.DateAvailability{
		DoctorID:      doctorID,
		Date:          date,
		Slots:         clean,
		SlotDuration:  settings.SlotDuration,
		GeneratedFrom: settings.Blocks,
		UpdatedAt:     s.now().Unix(),
	}
	if err := s.Availability.SaveDateAvailability(ctx, doc); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return false, nil
}

func (s *DefaultSchedulingService) ListAvailableDates(ctx context.Context, doctorID string, daysAhead int) ([]string, error) {
	if daysAhead <= 0 {
		daysAhead = 60
	}
	today := s.now()
	from := today.Format(DateKeyLayout)
	to := today.AddDate(0, 0, daysAhead).Format(DateKeyLayout)

	docs, err := s.Availability.ListDateAvailabilities(ctx, doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	dates := make([]string, 0, len(docs))
	for i := range docs {
		dates = append(dates, docs[i].Date)
	}
	return dates, nil
}

func (s *DefaultSchedulingService) MonthSlotCounts(ctx context.Context, doctorID, month string) (map[string]int, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month %q", ErrInvalidFormat, month)
	}
	// Month keys sort lexicographically, so the whole month is one range.
	from := month + "-01"
	to := month + "-31"

	docs, err := s.Availability.ListDateAvailabilities(ctx, doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	settings, err := s.GetWorkSettings(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(docs))
	for i := range docs {
		counts[docs[i].Date] = len(SlotsFromDocument(&docs[i], settings.SlotDuration))
	}
	return counts, nil
}

func (s *DefaultSchedulingService) computeBusySet(ctx context.Context, doctorID string, day time.Time) (BusySet, error) {
	start, end := DayBounds(day)
	appts, err := s.Appointments.ListByDoctorBetween(ctx, doctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return BusySetFrom(appts), nil
}

func (s *DefaultSchedulingService) RequestBooking(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	day, err := parseDateKey(input.Date)
	if err != nil {
		return nil, err
	}
	slotStart, err := SlotTime(day, input.Slot)
	if err != nil {
		return nil, err
	}

	doctor, err := s.Doctors.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, input.DoctorID)
	}

	settings, err := s.GetWorkSettings(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	override, err := s.Availability.GetDateAvailability(ctx, input.DoctorID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	offered := ResolveDateSlots(day, settings, override, doctor.Schedule)
	canonical := FormatTimeOfDay(mustMinute(input.Slot))
	if !containsSlot(offered, canonical) {
		return nil, fmt.Errorf("%w: %s on %s", ErrSlotNotOffered, input.Slot, input.Date)
	}

	// Re-check occupancy strictly between the user's selection and the
	// write. This narrows the double-booking window; it does not close it —
	// two concurrent requests can still both pass, which the store layer
	// does not prevent.
	busy, err := s.computeBusySet(ctx, input.DoctorID, day)
	if err != nil {
		return nil, err
	}
	if busy.Contains(slotStart) {
		return nil, &SlotTakenError{DoctorID: input.DoctorID, Date: input.Date, Slot: canonical}
	}

	duration := settings.SlotDuration
	if override != nil && override.SlotDuration > 0 {
		duration = override.SlotDuration
	}

	nowTs := s.now()
	appt := &models.Appointment{
		ID:           uuid.New().String(),
		DoctorID:     input.DoctorID,
		PatientID:    input.PatientID,
		Status:       models.AppointmentRequested,
		SlotStart:    slotStart,
		SlotEnd:      slotStart.Add(time.Duration(duration) * time.Minute),
		Reason:       input.Reason,
		RequestedAt:  nowTs,
		UpdatedAt:    nowTs,
		LastChangeBy: "patient",
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if s.Notifier != nil {
		title := "New appointment request"
		body := fmt.Sprintf("A patient requested %s on %s.", canonical, input.Date)
		data := map[string]string{"appointmentId": appt.ID, "type": "appointment_requested"}
		if err := s.Notifier.SendPush(ctx, input.DoctorID, title, body, data); err != nil {
			logger.Warn("booking push failed", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

func (s *DefaultSchedulingService) UpdateAppointmentStatus(ctx context.Context, id, status, actorID, actorRole string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if appt == nil {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	if actorID != appt.DoctorID && actorID != appt.PatientID {
		return nil, fmt.Errorf("%w: appointment %s", ErrForbidden, id)
	}
	if !models.ValidStatusTransition(appt.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
	}

	if err := s.Appointments.UpdateStatus(ctx, id, status, actorRole); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	appt.Status = status
	appt.LastChangeBy = actorRole
	appt.UpdatedAt = s.now()

	// Tell whichever side did not make the change.
	recipient := appt.PatientID
	if actorRole == "patient" {
		recipient = appt.DoctorID
	}
	if s.Notifier != nil {
		title := "Appointment " + status
		body := fmt.Sprintf("Your appointment on %s is now %s.",
			appt.SlotStart.Format("2006-01-02 15:04"), status)
		data := map[string]string{"appointmentId": appt.ID, "type": "appointment_" + status}
		if err := s.Notifier.SendPush(ctx, recipient, title, body, data); err != nil {
			logger.Warn("status push failed", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	if status == models.AppointmentAccepted && s.Reminders != nil {
		fireAt := appt.SlotStart.Add(-reminderLead)
		if fireAt.After(s.now()) {
			payload := models.ReminderPayload{
				AppointmentID: appt.ID,
				Target:        "patient",
				RecipientID:   appt.PatientID,
				Title:         "Upcoming appointment",
				Body:          fmt.Sprintf("Your appointment starts at %s.", appt.SlotStart.Format("15:04")),
				FireDate:      fireAt.Format(time.RFC3339),
			}
			if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
				logger.Warn("reminder scheduling failed", zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}

	return appt, nil
}

func (s *DefaultSchedulingService) ListAppointments(ctx context.Context, userID, role string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByUser(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return appts, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// mustMinute is only called after the slot already parsed once.
func mustMinute(slot string) TimeOfDay {
	m, _ := ParseTimeOfDay(slot)
	return m
}
