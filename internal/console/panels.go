// Package console supplies the dashboard's panels: the default layout and
// the render slot for each panel id. Panel bodies summarize the
// membership/billing back office; the data itself comes from a Snapshot.
package console

import (
	"fmt"
	"strings"

	"widgetdeck/internal/ui"
	"widgetdeck/internal/ui/textutil"
	"widgetdeck/internal/widget"
)

// Panel ids.
const (
	PanelMembers       = "members"
	PanelGroups        = "groups"
	PanelSubscriptions = "subscriptions"
	PanelPayments      = "payments"
	PanelDocuments     = "documents"
	PanelActivity      = "activity"
)

// DefaultSet returns the layout used on first run and on reset.
func DefaultSet() widget.Layout {
	return widget.Layout{
		{ID: PanelMembers, Title: "Members", Visible: true, Order: 1, Size: widget.SizeNarrow},
		{ID: PanelGroups, Title: "Groups", Visible: true, Order: 2, Size: widget.SizeNarrow},
		{ID: PanelSubscriptions, Title: "Subscriptions", Visible: true, Order: 3, Size: widget.SizeNarrow},
		{ID: PanelPayments, Title: "Payments", Visible: true, Order: 4, Size: widget.SizeMedium},
		{ID: PanelDocuments, Title: "Documents", Visible: true, Order: 5, Size: widget.SizeMedium},
		{ID: PanelActivity, Title: "Recent activity", Visible: true, Order: 6, Size: widget.SizeWide},
	}
}

// Snapshot is the back-office figures the panels display.
type Snapshot struct {
	Members         int
	NewMembers      int
	Groups          int
	ActiveSubs      int
	ExpiringSubs    int
	PaymentsDue     int
	PaymentsOverdue int
	Documents       int
	PendingDocs     int
	Activity        []string
}

// SampleSnapshot returns placeholder figures until a backend is wired.
func SampleSnapshot() Snapshot {
	return Snapshot{
		Members:         1284,
		NewMembers:      37,
		Groups:          42,
		ActiveSubs:      1102,
		ExpiringSubs:    58,
		PaymentsDue:     214,
		PaymentsOverdue: 19,
		Documents:       3310,
		PendingDocs:     12,
		Activity: []string{
			"Payment received from M. Okafor",
			"Group \"Youth 2026\" created",
			"Subscription renewed for L. Janssen",
			"Document uploaded: bylaws-v4.pdf",
		},
	}
}

// Slots returns the render slot for every panel in DefaultSet.
func Slots(s Snapshot) map[string]ui.Slot {
	return map[string]ui.Slot{
		PanelMembers: func(int) string {
			return fmt.Sprintf("%d members\n+%d this month", s.Members, s.NewMembers)
		},
		PanelGroups: func(int) string {
			return fmt.Sprintf("%d groups", s.Groups)
		},
		PanelSubscriptions: func(int) string {
			return fmt.Sprintf("%d active\n%d expiring soon", s.ActiveSubs, s.ExpiringSubs)
		},
		PanelPayments: func(int) string {
			return fmt.Sprintf("%d due  %d overdue", s.PaymentsDue, s.PaymentsOverdue)
		},
		PanelDocuments: func(int) string {
			return fmt.Sprintf("%d documents\n%d awaiting review", s.Documents, s.PendingDocs)
		},
		PanelActivity: func(width int) string {
			lines := make([]string, 0, len(s.Activity))
			for _, a := range s.Activity {
				lines = append(lines, textutil.Truncate("• "+a, width))
			}
			return strings.Join(lines, "\n")
		},
	}
}
