package availability

type Input struct {
	Address  *Address
	Zones    []Zone
	Slots    []Slot
	Selected *int64
}

// Policy tunes resolution. PreserveStale keeps a previously chosen slot in the
// allowed set when the current snapshot would otherwise drop it.
type Policy struct {
	PreserveStale bool
}

type Resolution struct {
	RequiredSlotID *int64
	Slots          []Slot
	Preserved      bool
}

// Allows reports whether slotID is part of the allowed set.
func (r Resolution) Allows(slotID int64) bool {
	return containsSlot(r.Slots, slotID)
}

// Resolve computes the delivery slots a reservation for in.Address may use.
// Output order follows in.Slots; a preserved selection is always last.
func Resolve(in Input, p Policy) Resolution {
	active := activeSlots(in.Slots)
	if in.Address == nil {
		return Resolution{Slots: active}
	}

	selected := findSlot(in.Slots, in.Selected)
	zone := findZone(in.Zones, in.Address.ZoneID)

	if zone == nil || !zone.Serves() || zone.SlotID == nil {
		if p.PreserveStale && selected != nil && !selected.Active {
			return Resolution{Slots: []Slot{*selected}, Preserved: true}
		}
		return Resolution{Slots: []Slot{}}
	}

	required := *zone.SlotID
	allowed := make([]Slot, 0, 1)
	for _, s := range active {
		if s.ID == required {
			allowed = append(allowed, s)
		}
	}

	res := Resolution{RequiredSlotID: &required, Slots: allowed}
	if p.PreserveStale && selected != nil && !containsSlot(allowed, selected.ID) {
		res.Slots = append(res.Slots, *selected)
		res.Preserved = true
	}
	return res
}

func activeSlots(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

func findSlot(slots []Slot, id *int64) *Slot {
	if id == nil {
		return nil
	}
	for i := range slots {
		if slots[i].ID == *id {
			return &slots[i]
		}
	}
	return nil
}

func findZone(zones []Zone, id *int64) *Zone {
	if id == nil {
		return nil
	}
	for i := range zones {
		if zones[i].ID == *id {
			return &zones[i]
		}
	}
	return nil
}

func containsSlot(slots []Slot, id int64) bool {
	for _, s := range slots {
		if s.ID == id {
			return true
		}
	}
	return false
}
