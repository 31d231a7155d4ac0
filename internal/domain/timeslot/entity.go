package timeslot

import (
	"delivery-admin/internal/domain/availability"
)

// Template is a recurring delivery window such as 09:00-13:00.
type Template struct {
	id       int64
	start    availability.Clock
	end      availability.Clock
	isActive bool
}

func NewTemplate(start, end string, isActive *bool) (*Template, error) {
	t := &Template{isActive: true}
	if err := t.Update(start, end, isActive); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructTemplate(id int64, start, end availability.Clock, isActive bool) *Template {
	return &Template{id: id, start: start, end: end, isActive: isActive}
}

func (t *Template) Update(start, end string, isActive *bool) error {
	s, err := availability.ParseClock(start)
	if err != nil {
		return err
	}
	e, err := availability.ParseClock(end)
	if err != nil {
		return err
	}
	if err := availability.CheckTimeRange(s, e); err != nil {
		return err
	}
	t.start = s
	t.end = e
	if isActive != nil {
		t.isActive = *isActive
	}
	return nil
}

func (t *Template) ID() int64                 { return t.id }
func (t *Template) Start() availability.Clock { return t.start }
func (t *Template) End() availability.Clock   { return t.end }
func (t *Template) IsActive() bool            { return t.isActive }

func (t *Template) Snapshot() availability.Template {
	return availability.Template{ID: t.id, Start: t.start, End: t.end, Active: t.isActive}
}
