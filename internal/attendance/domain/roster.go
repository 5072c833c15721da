package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payload is the two-collection attendance payload the dashboard consumes.
// This shape is fixed by the external data source.
type Payload struct {
	Drivers []*Employee `json:"drivers"`
	EMTs    []*Employee `json:"emts"`
}

// DecodePayload decodes and validates a payload from the reader
func DecodePayload(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode attendance payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks every employee in both collections and that ids are
// unique across the whole payload
func (p *Payload) Validate() error {
	seen := make(map[string]struct{}, len(p.Drivers)+len(p.EMTs))
	for _, emp := range append(append([]*Employee{}, p.Drivers...), p.EMTs...) {
		if emp == nil {
			return fmt.Errorf("payload contains a null employee entry")
		}
		if err := emp.Validate(); err != nil {
			return err
		}
		if _, dup := seen[emp.ID]; dup {
			return fmt.Errorf("duplicate employee id %s", emp.ID)
		}
		seen[emp.ID] = struct{}{}
	}
	return nil
}

// Roster is the read-only in-memory view of one payload load.
// Employees keep payload order: drivers first, then emts.
type Roster struct {
	LoadID    string
	LoadedAt  time.Time
	employees []*Employee
	byID      map[string]*Employee
}

// NewRoster builds a roster from a validated payload
func NewRoster(p *Payload) *Roster {
	employees := make([]*Employee, 0, len(p.Drivers)+len(p.EMTs))
	employees = append(employees, p.Drivers...)
	employees = append(employees, p.EMTs...)
	return NewRosterFromEmployees(employees)
}

// NewRosterFromEmployees builds a roster directly, preserving order
func NewRosterFromEmployees(employees []*Employee) *Roster {
	byID := make(map[string]*Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	return &Roster{
		LoadID:    uuid.New().String(),
		LoadedAt:  time.Now().UTC(),
		employees: employees,
		byID:      byID,
	}
}

// EmptyRoster returns a roster with no employees. Used when the data
// source is unavailable; every resolution against it yields nil.
func EmptyRoster() *Roster {
	return NewRoster(&Payload{})
}

// Payload rebuilds the two-collection payload shape from the roster.
// Drivers keep their own collection; every other role lands in emts,
// mirroring how the upstream source groups crew members.
func (r *Roster) Payload() *Payload {
	p := &Payload{
		Drivers: make([]*Employee, 0, len(r.employees)),
		EMTs:    make([]*Employee, 0, len(r.employees)),
	}
	for _, emp := range r.employees {
		if emp.Role == RoleDriver {
			p.Drivers = append(p.Drivers, emp)
		} else {
			p.EMTs = append(p.EMTs, emp)
		}
	}
	return p
}

// All returns every employee in load order
func (r *Roster) All() []*Employee {
	return r.employees
}

// Len returns the employee count
func (r *Roster) Len() int {
	return len(r.employees)
}

// Find returns the employee with the given id, or nil
func (r *Roster) Find(id string) *Employee {
	return r.byID[id]
}

// Filter narrows the roster by an optional name fragment and an optional
// role. Name matching is a case-insensitive substring match; role matching
// is exact and case-insensitive. Order is preserved and the roster itself
// is never modified.
func (r *Roster) Filter(name, role string) []*Employee {
	nameFragment := strings.ToLower(strings.TrimSpace(name))
	roleTag := strings.ToLower(strings.TrimSpace(role))

	out := make([]*Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		if nameFragment != "" && !strings.Contains(strings.ToLower(emp.Name), nameFragment) {
			continue
		}
		if roleTag != "" && string(emp.Role) != roleTag {
			continue
		}
		out = append(out, emp)
	}
	return out
}
