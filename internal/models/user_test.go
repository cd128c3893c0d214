package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserType_Valid(t *testing.T) {
	assert.True(t, TypeStudent.Valid())
	assert.True(t, TypeProfessor.Valid())
	assert.True(t, TypeTeacher.Valid())

	assert.False(t, UserType("").Valid())
	assert.False(t, UserType("wizard").Valid())
	assert.False(t, UserType("Student").Valid(), "enum values are case sensitive")
}

func TestProfileUpdateRequest_AbsentVsNull(t *testing.T) {
	// A field absent from the payload stays nil; a present field is set.
	var req ProfileUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bio": ""}`), &req))

	require.NotNil(t, req.Bio)
	assert.Empty(t, *req.Bio)
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Score)
}

func TestUser_JSONFieldNames(t *testing.T) {
	user := User{
		UserID:   7,
		Name:     "Jane",
		Email:    "jane@x.com",
		UserType: TypeStudent,
		Education: []Education{
			{EducationID: 3, UserID: 7, Degree: "BSc", Institution: "MIT", Year: 2020},
		},
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "user_id")
	assert.Contains(t, decoded, "test_count")
	assert.Contains(t, decoded, "phone_no")
	assert.Contains(t, decoded, "education")

	edu := decoded["education"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, edu, "education_id")
	assert.Equal(t, "MIT", edu["institution"])
}
