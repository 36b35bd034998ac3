package order

import (
	"testing"
	"time"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestSchedule_FourStages(t *testing.T) {
	t.Parallel()

	got := Schedule(at(2025, time.June, 2, 10), "Home")
	if len(got) != 4 {
		t.Fatalf("milestones=%d, expected 4", len(got))
	}
	wantLabels := []string{"Order Confirmed", "Shipped", "Out for Delivery", "Delivery"}
	for i, m := range got {
		if m.Label != wantLabels[i] {
			t.Errorf("label[%d]=%q, expected %q", i, m.Label, wantLabels[i])
		}
	}
	if got[2].Date != got[3].Date {
		t.Errorf("out-for-delivery %q != delivery %q", got[2].Date, got[3].Date)
	}
}

func TestSchedule_MondayMorning(t *testing.T) {
	t.Parallel()

	// Monday 10:00, before the cutoff: confirmed the same day.
	got := Schedule(at(2025, time.June, 2, 10), "Home")

	want := []string{"Mon, 2nd Jun", "Tue, 3rd Jun", "Wed, 4th Jun", "Wed, 4th Jun"}
	for i, m := range got {
		if m.Date != want[i] {
			t.Errorf("date[%d]=%q, expected %q", i, m.Date, want[i])
		}
	}
}

func TestSchedule_EveningCutoff(t *testing.T) {
	t.Parallel()

	// 18:59 confirms same day, 19:00 rolls to the next.
	before := Schedule(time.Date(2025, time.June, 10, 18, 59, 0, 0, time.UTC), "Home")
	if before[0].Date != "Tue, 10th Jun" {
		t.Errorf("18:59 confirm=%q, expected Tue, 10th Jun", before[0].Date)
	}

	after := Schedule(at(2025, time.June, 10, 19), "Home")
	if after[0].Date != "Wed, 11th Jun" {
		t.Errorf("19:00 confirm=%q, expected Wed, 11th Jun", after[0].Date)
	}
}

func TestSchedule_WednesdayEvening_HomeDeliversSaturday(t *testing.T) {
	t.Parallel()

	// Wednesday 20:00: confirm Thu, ship Fri, out Sat. Home addresses
	// take weekend delivery.
	got := Schedule(at(2025, time.June, 4, 20), "Home")

	want := []string{"Thu, 5th Jun", "Fri, 6th Jun", "Sat, 7th Jun", "Sat, 7th Jun"}
	for i, m := range got {
		if m.Date != want[i] {
			t.Errorf("date[%d]=%q, expected %q", i, m.Date, want[i])
		}
	}
}

func TestSchedule_WednesdayEvening_WorkSkipsToMonday(t *testing.T) {
	t.Parallel()

	// Same placement, Work address: the Saturday slot rolls to Monday.
	got := Schedule(at(2025, time.June, 4, 20), "Work")

	if got[2].Date != "Mon, 9th Jun" {
		t.Errorf("out=%q, expected Mon, 9th Jun", got[2].Date)
	}
	if got[3].Date != "Mon, 9th Jun" {
		t.Errorf("delivery=%q, expected Mon, 9th Jun", got[3].Date)
	}
	// Shipped stays on the weekend; only delivery stages move.
	if got[1].Date != "Fri, 6th Jun" {
		t.Errorf("shipped=%q, expected Fri, 6th Jun", got[1].Date)
	}
}

func TestSchedule_WorkSundaySkipsToMonday(t *testing.T) {
	t.Parallel()

	// Friday morning: confirm Fri, ship Sat, out Sun. Work rolls one day.
	got := Schedule(at(2025, time.June, 6, 10), "Work")

	if got[2].Date != "Mon, 9th Jun" {
		t.Errorf("out=%q, expected Mon, 9th Jun", got[2].Date)
	}
}

func TestSchedule_Deterministic(t *testing.T) {
	t.Parallel()

	placed := at(2025, time.March, 14, 15)
	a := Schedule(placed, "Work")
	b := Schedule(placed, "Work")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("milestone %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDaySuffix(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 5: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		30: "th", 31: "st",
	}
	for day, want := range cases {
		if got := daySuffix(day); got != want {
			t.Errorf("daySuffix(%d)=%q, expected %q", day, got, want)
		}
	}
}

func TestFormatMilestoneDate(t *testing.T) {
	t.Parallel()

	got := formatMilestoneDate(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))
	if got != "Thu, 2nd Jan" {
		t.Errorf("got %q, expected %q", got, "Thu, 2nd Jan")
	}
}
