package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepartment(t *testing.T) {
	t.Run("canonical key", func(t *testing.T) {
		d, ok := ParseDepartment("Finance")
		require.True(t, ok)
		assert.Equal(t, DepartmentFinance, d)
	})

	t.Run("arabic label", func(t *testing.T) {
		d, ok := ParseDepartment("المبيعات")
		require.True(t, ok)
		assert.Equal(t, DepartmentSales, d)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := ParseDepartment("Engineering")
		assert.False(t, ok)
	})
}

func TestDepartmentValid(t *testing.T) {
	for _, d := range Departments() {
		assert.True(t, d.Valid(), "department %q should be valid", d)
	}
	assert.False(t, Department("Legal").Valid())
	assert.Len(t, Departments(), 5)
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"full date", "2024-05-15", "2024-05"},
		{"month only", "2024-05", "2024-05"},
		{"too short", "2024", "2024"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthOf(tt.date))
		})
	}
}

func TestFindEmployee(t *testing.T) {
	employees := SeedEmployees()

	emp, ok := FindEmployee(employees, "2")
	require.True(t, ok)
	assert.Equal(t, "Fatimah Al-Zahrani", emp.Name)

	_, ok = FindEmployee(employees, "missing")
	assert.False(t, ok)

	_, ok = FindEmployee(nil, "1")
	assert.False(t, ok)
}

func TestSeedCrossReferences(t *testing.T) {
	employees := SeedEmployees()
	for _, ev := range SeedEvaluations() {
		_, ok := FindEmployee(employees, ev.EmployeeID)
		assert.True(t, ok, "seed evaluation %s references missing employee %s", ev.ID, ev.EmployeeID)
		assert.True(t, ev.Type.Valid())
		assert.GreaterOrEqual(t, ev.Score, 1)
		assert.LessOrEqual(t, ev.Score, 5)
	}
}
