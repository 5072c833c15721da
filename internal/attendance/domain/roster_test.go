package domain_test

import (
	"strings"
	"testing"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() *domain.Payload {
	return &domain.Payload{
		Drivers: []*domain.Employee{
			{ID: "DRV00001", Name: "Anaya Sharma", Role: domain.RoleDriver},
			{ID: "DRV00002", Name: "Krishna Kumar", Role: domain.RoleDriver},
		},
		EMTs: []*domain.Employee{
			{ID: "MS00001", Name: "Anand Gupta", Role: domain.RoleEMT},
			{ID: "MS00002", Name: "Meera Joshi", Role: domain.RoleEMT},
		},
	}
}

func TestDecodePayload(t *testing.T) {
	body := `{
		"drivers": [{"id": "DRV00001", "name": "Aarav Sharma", "userRole": "driver", "attendance": []}],
		"emts": [{"id": "MS00001", "name": "Diya Patel", "userRole": "emt", "attendance": []}]
	}`

	p, err := domain.DecodePayload(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, p.Drivers, 1)
	require.Len(t, p.EMTs, 1)
	assert.Equal(t, domain.RoleDriver, p.Drivers[0].Role)

	_, err = domain.DecodePayload(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestPayload_Validate_RejectsNullEntries(t *testing.T) {
	p := &domain.Payload{
		Drivers: []*domain.Employee{nil},
	}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null employee entry")
}

func TestDecodePayload_NullEntryIsAnErrorNotAPanic(t *testing.T) {
	_, err := domain.DecodePayload(strings.NewReader(`{"drivers": [null], "emts": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null employee entry")
}

func TestPayload_Validate_RejectsDuplicateIDsAcrossCollections(t *testing.T) {
	p := &domain.Payload{
		Drivers: []*domain.Employee{{ID: "X00001", Name: "A", Role: domain.RoleDriver}},
		EMTs:    []*domain.Employee{{ID: "X00001", Name: "B", Role: domain.RoleEMT}},
	}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate employee id")
}

func TestNewRoster_KeepsPayloadOrder(t *testing.T) {
	roster := domain.NewRoster(testPayload())

	require.Equal(t, 4, roster.Len())
	ids := make([]string, 0, 4)
	for _, emp := range roster.All() {
		ids = append(ids, emp.ID)
	}
	assert.Equal(t, []string{"DRV00001", "DRV00002", "MS00001", "MS00002"}, ids)
	assert.NotEmpty(t, roster.LoadID)
}

func TestRoster_Find(t *testing.T) {
	roster := domain.NewRoster(testPayload())

	emp := roster.Find("MS00002")
	require.NotNil(t, emp)
	assert.Equal(t, "Meera Joshi", emp.Name)

	assert.Nil(t, roster.Find("DRV99999"))
}

func TestRoster_Filter(t *testing.T) {
	roster := domain.NewRoster(testPayload())

	t.Run("no filters returns everyone", func(t *testing.T) {
		assert.Len(t, roster.Filter("", ""), 4)
	})

	t.Run("name fragment is a case-insensitive substring match", func(t *testing.T) {
		got := roster.Filter("ana", "")
		require.Len(t, got, 2)
		assert.Equal(t, "Anaya Sharma", got[0].Name)
		assert.Equal(t, "Anand Gupta", got[1].Name)
	})

	t.Run("name and role combine", func(t *testing.T) {
		got := roster.Filter("ana", "driver")
		require.Len(t, got, 1)
		assert.Equal(t, "DRV00001", got[0].ID)
	})

	t.Run("unknown role matches nothing", func(t *testing.T) {
		assert.Empty(t, roster.Filter("", "pilot"))
	})

	t.Run("filtering never mutates the roster", func(t *testing.T) {
		roster.Filter("ana", "driver")
		assert.Equal(t, 4, roster.Len())
	})
}

func TestRoster_Payload_SplitsByRole(t *testing.T) {
	roster := domain.NewRoster(testPayload())
	p := roster.Payload()

	assert.Len(t, p.Drivers, 2)
	assert.Len(t, p.EMTs, 2)
	assert.Equal(t, "MS00001", p.EMTs[0].ID)
}

func TestEmptyRoster(t *testing.T) {
	roster := domain.EmptyRoster()

	assert.Equal(t, 0, roster.Len())
	assert.Empty(t, roster.Filter("any", "driver"))
	assert.Nil(t, roster.Find("DRV00001"))
}
