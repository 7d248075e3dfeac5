package domain

import (
	"iter"
	"time"
)

// StepState classifies a canonical step relative to the current status.
type StepState string

const (
	// StepPast marks steps the shipment has already passed.
	StepPast StepState = "past"
	// StepCurrent marks the step the shipment is at.
	StepCurrent StepState = "current"
	// StepFuture marks steps the shipment has not reached yet.
	StepFuture StepState = "future"
)

// BadgeSeverity selects the styling of the status badge.
type BadgeSeverity string

const (
	// SeverityNormal is the regular status badge styling.
	SeverityNormal BadgeSeverity = "normal"
	// SeverityAlert is the urgent styling used for customs holds.
	SeverityAlert BadgeSeverity = "alert"
)

const (
	// CustomsHoldLabel replaces the status label while a shipment is held.
	CustomsHoldLabel = "Customs Hold"
	// CustomsHoldMessage is the fixed alert text shown for held shipments.
	CustomsHoldMessage = "Your goods have been held by customs. Please contact our support team immediately to avoid confiscation of your shipment."
)

// StepStateAt returns the visual state of the step at stepIndex given the
// shipment's current index.
func StepStateAt(stepIndex, currentIndex int) StepState {
	switch {
	case stepIndex < currentIndex:
		return StepPast
	case stepIndex == currentIndex:
		return StepCurrent
	default:
		return StepFuture
	}
}

// ProgressFraction computes (currentIndex+1)/totalSteps clamped to [0,1].
// An unknown status (UnknownStatusIndex) yields 0.
func ProgressFraction(currentIndex, totalSteps int) float64 {
	if totalSteps <= 0 || currentIndex < 0 {
		return 0
	}

	fraction := float64(currentIndex+1) / float64(totalSteps)
	if fraction > 1 {
		return 1
	}
	return fraction
}

// Step is one entry of the rendered progress bar.
type Step struct {
	// Status is the canonical status key for this step.
	Status Status `json:"status"`
	// Label is the human-readable step name.
	Label string `json:"label"`
	// State is past, current or future.
	State StepState `json:"state"`
}

// DisplayState is everything a view needs to render a shipment's status:
// badge, alert, progress fraction and per-step states.
type DisplayState struct {
	// BadgeLabel is the text shown on the status badge.
	BadgeLabel string `json:"badge_label"`
	// BadgeSeverity selects the badge styling.
	BadgeSeverity BadgeSeverity `json:"badge_severity"`
	// AlertMessage carries the fixed customs-hold text when applicable.
	AlertMessage string `json:"alert_message,omitempty"`
	// StatusIndex is the shipment's position in the canonical sequence,
	// or UnknownStatusIndex.
	StatusIndex int `json:"status_index"`
	// Progress is the progress-bar fraction in [0,1].
	Progress float64 `json:"progress"`
	// Steps are the canonical steps with their visual states.
	Steps []Step `json:"steps"`
}

// BuildDisplayState derives the renderable state for a shipment.
//
// A customs hold rebrands the badge (label, severity, alert text) but does not
// freeze progress: the progress bar and step states keep following the
// underlying status, even when that status is delivered.
func BuildDisplayState(s *Shipment) DisplayState {
	index := StatusIndex(s.Status)

	steps := make([]Step, len(StatusSequence))
	for i, status := range StatusSequence {
		steps[i] = Step{
			Status: status,
			Label:  status.Label(),
			State:  StepStateAt(i, index),
		}
	}

	state := DisplayState{
		BadgeLabel:    s.Status.Label(),
		BadgeSeverity: SeverityNormal,
		StatusIndex:   index,
		Progress:      ProgressFraction(index, len(StatusSequence)),
		Steps:         steps,
	}

	if s.CustomsHold {
		state.BadgeLabel = CustomsHoldLabel
		state.BadgeSeverity = SeverityAlert
		state.AlertMessage = CustomsHoldMessage
	}

	return state
}

// EventRow is one renderable timeline entry.
type EventRow struct {
	// ID is the event's store identifier.
	ID string `json:"id"`
	// Title is the event description.
	Title string `json:"title"`
	// Location is where the event took place.
	Location string `json:"location"`
	// EventDate is when the event occurred.
	EventDate time.Time `json:"event_date"`
	// Completed carries the admin-set flag verbatim.
	Completed bool `json:"completed"`
}

// EventRows yields render rows for the given events in the order supplied by
// the caller. The sequence is finite and restartable; ranging over it twice
// produces the same rows. The Completed flag is passed through untouched,
// never recomputed from dates. An empty slice yields an empty sequence.
func EventRows(events []ShipmentEvent) iter.Seq[EventRow] {
	return func(yield func(EventRow) bool) {
		for _, event := range events {
			row := EventRow{
				ID:        event.ID,
				Title:     event.Title,
				Location:  event.Location,
				EventDate: event.EventDate,
				Completed: event.Completed,
			}
			if !yield(row) {
				return
			}
		}
	}
}
