package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityTip_JSONOwnerShapes(t *testing.T) {
	t.Run("bare owner id", func(t *testing.T) {
		tip := CommunityTip{ID: 4, Title: "t", UserID: 9}
		b, err := json.Marshal(tip)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		assert.Equal(t, float64(9), body["user_id"])
		assert.Equal(t, float64(4), body["_id"])
	})

	t.Run("joined owner round trips", func(t *testing.T) {
		tip := CommunityTip{ID: 4, Title: "t", UserID: 9, Owner: &Owner{ID: 9, FullName: "Ada"}}
		b, err := json.Marshal(tip)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		owner, ok := body["user_id"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada", owner["full_name"])

		var decoded CommunityTip
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, uint(9), decoded.UserID)
		require.NotNil(t, decoded.Owner)
		assert.Equal(t, "Ada", decoded.Owner.FullName)
	})
}

func TestVolunteerSignup_JSONOpportunity(t *testing.T) {
	s := VolunteerSignup{ID: 1, UserID: 2, OpportunityID: 3, Status: SignupStatusPending}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, float64(3), body["opportunity_id"])

	s.Opportunity = &Opportunity{ID: 3, Title: "Beach cleanup", Date: time.Now()}
	b, err = json.Marshal(s)
	require.NoError(t, err)
	body = map[string]any{}
	require.NoError(t, json.Unmarshal(b, &body))
	opp, ok := body["opportunity_id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Beach cleanup", opp["title"])
}

func TestStringList_ValueScan(t *testing.T) {
	v, err := StringList{"cooking", "driving"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["cooking","driving"]`, v)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["a"]`)))
	assert.Equal(t, StringList{"a"}, l)
	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
	assert.Error(t, l.Scan(42))
}

func TestErrorCode(t *testing.T) {
	err := NewConflictError("dup")
	assert.Equal(t, CodeConflict, ErrorCode(err))
	assert.Equal(t, CodeNotFound, ErrorCode(errors.Join(errors.New("x"), NewNotFoundError("Tip"))))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))

	internal := NewInternalError(errors.New("connection refused"))
	assert.Equal(t, "connection refused", internal.Message)
}
