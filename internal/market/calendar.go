package market

import "time"

// taipei is the exchange time zone for TWSE and TPEx sessions.
var taipei = time.FixedZone("Asia/Taipei", 8*60*60)

// LastNSessions returns the last n Taiwan trading sessions up to and including
// from's date (most recent first). Weekends and fixed-date national holidays
// are skipped; lunar holidays are not computed.
func LastNSessions(n int, from time.Time) []time.Time {
	if n < 1 {
		n = 1
	}
	out := make([]time.Time, 0, n)
	d := truncateToDate(from.In(taipei))

	for len(out) < n {
		if isSessionTW(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

// HistoryWindowStart returns the start of a daily-bar window that covers the
// last n sessions, widened by padDays calendar days to absorb holidays the
// calendar does not know about.
func HistoryWindowStart(n, padDays int, from time.Time) time.Time {
	sessions := LastNSessions(n, from)
	oldest := sessions[len(sessions)-1]
	if padDays > 0 {
		oldest = oldest.AddDate(0, 0, -padDays)
	}
	return oldest
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// isSessionTW returns true if date is a regular trading day in Taiwan.
func isSessionTW(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	fixed := map[string]struct{}{
		"01-01": {}, // Founding Day
		"02-28": {}, // Peace Memorial Day
		"04-04": {}, // Children's Day
		"04-05": {}, // Tomb Sweeping Day
		"05-01": {}, // Labor Day
		"10-10": {}, // National Day
	}
	if _, ok := fixed[d.Format("01-02")]; ok {
		return false
	}
	return true
}
