package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMapping_Validate(t *testing.T) {
	valid := FieldMapping{
		{Source: "D", Role: RoleDate},
		{Source: "T", Role: RoleText},
		{Source: "V", Role: RoleValue},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mapping FieldMapping
	}{
		{"missing date", FieldMapping{{Source: "V", Role: RoleValue}}},
		{"missing value", FieldMapping{{Source: "D", Role: RoleDate}}},
		{"duplicate role", FieldMapping{
			{Source: "D", Role: RoleDate},
			{Source: "D2", Role: RoleDate},
			{Source: "V", Role: RoleValue},
		}},
		{"unknown role", FieldMapping{
			{Source: "D", Role: RoleDate},
			{Source: "V", Role: RoleValue},
			{Source: "X", Role: "balance"},
		}},
		{"empty source", FieldMapping{
			{Source: "", Role: RoleDate},
			{Source: "V", Role: RoleValue},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.mapping.Validate())
		})
	}
}

func TestFieldMapping_Column(t *testing.T) {
	m := FieldMapping{
		{Source: "D", Role: RoleDate},
		{Source: "V", Role: RoleValue},
	}

	c, ok := m.Column(RoleDate)
	assert.True(t, ok)
	assert.Equal(t, "D", c.Source)

	_, ok = m.Column(RoleName)
	assert.False(t, ok)
}
