// Package seed produces synthetic attendance rosters for development and
// demo environments. The generated records are test data, not production
// logic, but their classification matches the live classifier so the grid
// components consume the same record shape either way.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Vihaan", "Krishna",
	"Aryan", "Sai", "Anaya", "Diya", "Meera",
}

var lastNames = []string{
	"Sharma", "Verma", "Reddy", "Naidu", "Kumar",
	"Yadav", "Patel", "Joshi", "Gupta", "Mishra",
}

var absenceReasons = []string{
	"Family emergency", "Medical issue", "Personal reason", "Out of town",
	"Health checkup", "Car breakdown", "Power outage", "Internet issue",
	"Feeling sick", "Bad weather",
}

var ambulanceStateCodes = []string{"DL", "HR", "UP", "PB", "UK"}

// absenceProbability is the chance a duty day is a forced no-show
const absenceProbability = 0.05

// Generator builds synthetic rosters. Output is a pure function of the
// seed, the shift policy and the date window, so a fixed seed makes
// generation fully reproducible.
type Generator struct {
	policy domain.ShiftPolicy
	rng    *rand.Rand
	now    func() time.Time
}

// New creates a generator with the given seed
func New(policy domain.ShiftPolicy, randSeed int64) *Generator {
	return &Generator{
		policy: policy,
		rng:    rand.New(rand.NewSource(randSeed)),
		now:    time.Now,
	}
}

// WithClock overrides the generator's notion of "today". Tests use this to
// pin the generation window.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// GenerateAttendance produces one record per calendar day from windowStart
// through today inclusive, in ascending date order
func (g *Generator) GenerateAttendance(role domain.Role, windowStart time.Time) []domain.AttendanceRecord {
	shiftHours := g.policy.Hours(role)
	today := domain.NewDate(g.now())

	var records []domain.AttendanceRecord
	for day := domain.NewDate(windowStart); !day.After(today.Time); day = day.Next() {
		shiftStart := day.Add(domain.ShiftStartHourUTC * time.Hour)
		shiftEnd := shiftStart.Add(time.Duration(shiftHours * float64(time.Hour)))

		punchIn := shiftStart.Add(time.Duration(g.rng.Intn(60)) * time.Minute)
		punchOut := shiftEnd.Add(-time.Duration(g.rng.Intn(60)) * time.Minute)

		if g.rng.Float64() < absenceProbability {
			punchIn = shiftStart
			punchOut = shiftStart
		}

		status, worked := domain.ClassifyWith(punchIn, punchOut, shiftHours, g.borderline)

		reason := ""
		if status != domain.StatusPresent {
			reason = absenceReasons[g.rng.Intn(len(absenceReasons))]
		}

		records = append(records, domain.AttendanceRecord{
			Date:             day,
			Status:           status,
			Reason:           reason,
			PunchIn:          &punchIn,
			PunchOut:         &punchOut,
			TotalWorkingHour: worked,
			AmbulanceNumber:  g.ambulanceNumber(),
		})
	}
	return records
}

// GenerateEmployees produces count employees with sequential ids under the
// given prefix, each with a full attendance history
func (g *Generator) GenerateEmployees(count int, prefix string, role domain.Role, windowStart time.Time) []*domain.Employee {
	employees := make([]*domain.Employee, 0, count)
	for i := 1; i <= count; i++ {
		employees = append(employees, &domain.Employee{
			ID:          fmt.Sprintf("%s%05d", prefix, i),
			Name:        g.fullName(),
			PhoneNumber: g.phoneNumber(),
			Role:        role,
			Attendance:  g.GenerateAttendance(role, windowStart),
		})
	}
	return employees
}

// GeneratePayload produces the full two-collection payload
func (g *Generator) GeneratePayload(driverCount, emtCount int, windowStart time.Time) *domain.Payload {
	return &domain.Payload{
		Drivers: g.GenerateEmployees(driverCount, "DRV", domain.RoleDriver, windowStart),
		EMTs:    g.GenerateEmployees(emtCount, "MS", domain.RoleEMT, windowStart),
	}
}

// borderline models borderline lateness: a small chance a near-full shift
// is labeled late instead of present
func (g *Generator) borderline(workedHours, shiftHours float64) domain.Status {
	if g.rng.Float64() < 0.9 {
		return domain.StatusPresent
	}
	return domain.StatusLate
}

func (g *Generator) fullName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *Generator) phoneNumber() string {
	return fmt.Sprintf("+91%d", g.rng.Int63n(4_000_000_000)+6_000_000_000)
}

func (g *Generator) ambulanceNumber() string {
	state := ambulanceStateCodes[g.rng.Intn(len(ambulanceStateCodes))]
	region := g.rng.Intn(99) + 1
	number := g.rng.Intn(9000) + 1000
	return fmt.Sprintf("%s %02dAMB%d", state, region, number)
}
