package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"humspot-backend/internal/apperror"
)

type profilePhotoRequest struct {
	UserID        string `json:"userID" validate:"required"`
	ProfilePicURL string `json:"profilePicURL" validate:"required,url"`
}

type pathRequest struct {
	ActivityID string `path:"activityID" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
}

func TestValidate_UsesWireNames(t *testing.T) {
	fields := Validate(profilePhotoRequest{ProfilePicURL: "not a url"})
	assert.Equal(t, map[string]string{
		"userID":        "userID is required",
		"profilePicURL": "profilePicURL must be a valid URL",
	}, fields)

	fields = Validate(pathRequest{Rating: 9})
	assert.Equal(t, "activityID is required", fields["activityID"])
	assert.Equal(t, "rating must be at most 5", fields["rating"])
}

type idRequest struct {
	ActivityID string `path:"activityID" validate:"required,id"`
}

func TestValidate_ID(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"42", true},
		{"9223372036854775807", true},
		{"9223372036854775808", false},
		{"99999999999999999999999", false},
		{"4.2", false},
		{"abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			fields := Validate(idRequest{ActivityID: tt.raw})
			if tt.valid {
				assert.Empty(t, fields)
				return
			}
			assert.Equal(t, "activityID must be a valid id", fields["activityID"])
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(profilePhotoRequest{UserID: "u1", ProfilePicURL: "http://x/y.png"}))

	err := Check(profilePhotoRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Equal(t, "profilePicURL is required; userID is required", err.Error())
}
