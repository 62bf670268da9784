package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteResponse_StringField(t *testing.T) {
	response := &RemoteResponse{
		StatusCode: 201,
		JSON: map[string]interface{}{
			"id":     "patient-1",
			"count":  float64(3),
			"nested": map[string]interface{}{"patientWAVId": "wav-9"},
			"flag":   true,
		},
	}

	t.Run("Top Level String", func(t *testing.T) {
		assert.Equal(t, "patient-1", response.StringField("id"))
	})

	t.Run("Numeric Value Is Rendered", func(t *testing.T) {
		assert.Equal(t, "3", response.StringField("count"))
	})

	t.Run("Nested Path", func(t *testing.T) {
		assert.Equal(t, "wav-9", response.StringField("nested", "patientWAVId"))
	})

	t.Run("Missing Key", func(t *testing.T) {
		assert.Equal(t, "", response.StringField("missing"))
	})

	t.Run("Non Object In Path", func(t *testing.T) {
		assert.Equal(t, "", response.StringField("id", "deeper"))
	})

	t.Run("Non String Leaf", func(t *testing.T) {
		assert.Equal(t, "", response.StringField("flag"))
	})

	t.Run("No Decoded Body", func(t *testing.T) {
		empty := &RemoteResponse{StatusCode: 500, Text: "boom"}
		assert.Equal(t, "", empty.StringField("id"))
	})
}

func TestRemoteResponse_OK(t *testing.T) {
	assert.True(t, (&RemoteResponse{StatusCode: 200}).OK())
	assert.True(t, (&RemoteResponse{StatusCode: 201}).OK())
	assert.False(t, (&RemoteResponse{StatusCode: 199}).OK())
	assert.False(t, (&RemoteResponse{StatusCode: 409}).OK())
}

func TestRemoteResponse_ProvenanceCell(t *testing.T) {
	t.Run("JSON Body Wins", func(t *testing.T) {
		response := &RemoteResponse{
			StatusCode: 409,
			JSON:       map[string]interface{}{"message": "duplicate"},
			Text:       `{"message":"duplicate"}`,
		}
		assert.JSONEq(t, `{"message":"duplicate"}`, response.ProvenanceCell())
	})

	t.Run("Raw Text Fallback", func(t *testing.T) {
		response := &RemoteResponse{StatusCode: 500, Text: "upstream unavailable"}
		assert.Equal(t, "upstream unavailable", response.ProvenanceCell())
	})

	t.Run("Status Only Placeholder", func(t *testing.T) {
		response := &RemoteResponse{StatusCode: 204}
		assert.Equal(t, `{"status":204}`, response.ProvenanceCell())
	})
}
