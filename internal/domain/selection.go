package domain

// Selection is the customer's multi-service cart for one booking cycle.
// It has set semantics on service ID with insertion order preserved:
// toggling an absent service appends it, toggling a present one removes it
// without reordering the rest.
//
// Selection is a value type; Toggle returns a new Selection and never
// mutates the receiver. Totals are recomputed on every call.
type Selection struct {
	services []Service
}

// NewSelection builds a selection from the given services, keeping order.
// Duplicate IDs collapse to the first occurrence.
func NewSelection(services ...Service) Selection {
	s := Selection{}
	for _, svc := range services {
		if !s.Contains(svc.ID) {
			s.services = append(s.services, svc)
		}
	}
	return s
}

// Toggle adds svc when absent and removes it when present.
func (s Selection) Toggle(svc Service) Selection {
	out := make([]Service, 0, len(s.services)+1)
	removed := false
	for _, existing := range s.services {
		if existing.ID == svc.ID {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, svc)
	}
	return Selection{services: out}
}

// Contains reports whether a service with the given ID is selected.
func (s Selection) Contains(serviceID int64) bool {
	for _, svc := range s.services {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}

// Services returns the selected services in insertion order.
func (s Selection) Services() []Service {
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.services) == 0
}

// Count returns the number of selected services.
func (s Selection) Count() int {
	return len(s.services)
}

// TotalDurationMinutes returns the summed duration of the selection.
func (s Selection) TotalDurationMinutes() int {
	total := 0
	for _, svc := range s.services {
		total += svc.DurationMinutes
	}
	return total
}

// TotalPrice returns the summed price of the selection.
func (s Selection) TotalPrice() float64 {
	total := 0.0
	for _, svc := range s.services {
		total += svc.Price
	}
	return total
}
