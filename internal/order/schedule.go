package order

import (
	"fmt"
	"time"
)

// Milestone is one labeled stage of the 4-stage delivery schedule.
type Milestone struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// Orders placed at or after 19:00 local time are confirmed the next day.
const confirmCutoffHour = 19

// Schedule computes the delivery schedule for an order placed at
// orderedAt, shipping to an address of the given type. It always returns
// exactly four milestones: Order Confirmed, Shipped, Out for Delivery and
// Delivery (the last two share a date). "Work" addresses are never
// scheduled for weekend delivery; the out-for-delivery date rolls forward
// to the next Monday instead.
//
// Pure function of its inputs, safe to call concurrently.
func Schedule(orderedAt time.Time, addressType string) []Milestone {
	confirm := orderedAt
	if orderedAt.Hour() >= confirmCutoffHour {
		confirm = confirm.AddDate(0, 0, 1)
	}

	shipped := confirm.AddDate(0, 0, 1)

	out := shipped.AddDate(0, 0, 1)
	if addressType == "Work" {
		switch out.Weekday() {
		case time.Saturday:
			out = out.AddDate(0, 0, 2)
		case time.Sunday:
			out = out.AddDate(0, 0, 1)
		}
	}

	return []Milestone{
		{Label: "Order Confirmed", Date: formatMilestoneDate(confirm)},
		{Label: "Shipped", Date: formatMilestoneDate(shipped)},
		{Label: "Out for Delivery", Date: formatMilestoneDate(out)},
		{Label: "Delivery", Date: formatMilestoneDate(out)},
	}
}

// formatMilestoneDate renders e.g. "Tue, 3rd Jun".
func formatMilestoneDate(t time.Time) string {
	return fmt.Sprintf("%s, %d%s %s", t.Format("Mon"), t.Day(), daySuffix(t.Day()), t.Format("Jan"))
}

func daySuffix(day int) string {
	j := day % 10
	k := day % 100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	}
	return "th"
}
