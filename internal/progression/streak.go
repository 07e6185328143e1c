package progression

import "time"

// dateLayout is the day granularity used for streak accounting.
const dateLayout = "2006-01-02"

// DateKey collapses a time to its local calendar day.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// UpdateStreak returns the streak after a session finished at now.
// A second session on the same day leaves the streak unchanged; any
// session on a different day extends it by one.
func UpdateStreak(streak int, lastSession string, now time.Time) (int, string) {
	today := DateKey(now)
	if lastSession == today {
		return streak, lastSession
	}
	return streak + 1, today
}
