package availability

import "time"

// Suggestion pre-fills a reservation once an address resolves to a slot.
type Suggestion struct {
	SlotID int64
	Date   time.Time
	Time   Clock
}

func Suggest(slot Slot, tmpl Template) Suggestion {
	return Suggestion{
		SlotID: slot.ID,
		Date:   slot.DeliveryDate,
		Time:   tmpl.Start,
	}
}

// SuggestFor pre-fills from the slot the resolution requires, looked up in
// slots whether or not it is active. It returns false when the resolution has
// no required slot or when the slot or its template is missing.
func SuggestFor(res Resolution, slots []Slot, templates []Template) (Suggestion, bool) {
	if res.RequiredSlotID == nil {
		return Suggestion{}, false
	}
	slot := findSlot(slots, res.RequiredSlotID)
	if slot == nil {
		return Suggestion{}, false
	}
	for _, t := range templates {
		if t.ID == slot.TemplateID {
			return Suggest(*slot, t), true
		}
	}
	return Suggestion{}, false
}
