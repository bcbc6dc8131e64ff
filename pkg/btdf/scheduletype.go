package btdf

type ScheduleType string

const (
	ScheduleTypeWeekday ScheduleType = "weekday"
	ScheduleTypeWeekend ScheduleType = "weekend"
)

// DisplayLabel returns the Swedish heading shown above the departure lists.
func (scheduleType ScheduleType) DisplayLabel() string {
	if scheduleType == ScheduleTypeWeekend {
		return "Helgdagar"
	}

	return "Vardagar"
}
