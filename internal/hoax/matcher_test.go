package hoax

import (
	"testing"
)

func TestCheckAstronomicalDisaster(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)
	text := "A rare planetary alignment next week will trigger a worldwide blackout, insiders claim."

	report := m.Check(text)
	if !report.IsHoax {
		t.Fatalf("expected hoax match")
	}
	if len(report.Matches["astronomical_disasters"]) == 0 {
		t.Fatalf("expected astronomical_disasters matches, got %v", report.Matches)
	}
}

func TestCheckRoutineAstronomyIsClean(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)
	text := "Astronomers look forward to the conjunction of Venus and Jupiter, visible after sunset this weekend."

	report := m.Check(text)
	if report.IsHoax {
		t.Fatalf("expected no hoax match, got %v", report.Matches)
	}
	if len(report.Matches) != 0 {
		t.Fatalf("expected empty matches, got %v", report.Matches)
	}
}

func TestCheckRecordsAllMatchingPatterns(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)
	// Hits both the alignment pattern and the named-planet pattern.
	text := "NASA confirms that a planetary alignment of Venus and Jupiter will align to cause a nationwide blackout."

	report := m.Check(text)
	if !report.IsHoax {
		t.Fatalf("expected hoax match")
	}
	if got := len(report.Matches["astronomical_disasters"]); got < 2 {
		t.Fatalf("expected every matching pattern recorded, got %d", got)
	}
}

func TestCheckHealthAndPoliticalCategories(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)

	report := m.Check("They say the vaccine is secretly used to track citizens with a chip.")
	if !report.IsHoax || len(report.Matches["health_conspiracies"]) == 0 {
		t.Fatalf("expected health_conspiracies match, got %v", report.Matches)
	}

	report = m.Check("The deep state controls everything, the broadcast claimed.")
	if !report.IsHoax || len(report.Matches["political_conspiracies"]) == 0 {
		t.Fatalf("expected political_conspiracies match, got %v", report.Matches)
	}

	report = m.Check("The health ministry published routine vaccination schedules for the winter.")
	if report.IsHoax {
		t.Fatalf("expected clean text, got %v", report.Matches)
	}
}

func TestCheckIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil)
	report := m.Check("PLANETARY ALIGNMENT TO CAUSE TOTAL BLACKOUT!!!")
	if !report.IsHoax {
		t.Fatalf("expected case-insensitive match")
	}
}
