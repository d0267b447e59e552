package panel_test

import (
	"encoding/json"
	"hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormState_Constructors(t *testing.T) {
	idle := panel.Idle()
	assert.Equal(t, panel.ModeIdle, idle.Mode())
	assert.False(t, idle.Open())
	assert.Nil(t, idle.Draft())

	adding := panel.Adding(nil)
	assert.Equal(t, panel.ModeAdding, adding.Mode())
	assert.NotNil(t, adding.Draft())

	source := resource.Record{"hotelId": json.Number("1")}
	editing := panel.Editing(source)
	source["hotelId"] = json.Number("2")

	assert.Equal(t, panel.ModeEditing, editing.Mode())
	assert.Equal(t, json.Number("1"), editing.Draft()["hotelId"])

	var zero panel.FormState
	assert.Equal(t, panel.ModeIdle, zero.Mode())
}

func TestState_JSON(t *testing.T) {
	state := panel.NewState()
	state.Form = panel.Editing(resource.Record{"hotelId": json.Number("12345678901234567890"), "rating": json.Number("4.8")})
	state.Records = []resource.Record{{"hotelId": json.Number("12345678901234567890")}}
	state.Loaded = true

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var got panel.State
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, panel.ModeEditing, got.Form.Mode())
	assert.Equal(t, json.Number("12345678901234567890"), got.Form.Draft()["hotelId"])
	assert.Equal(t, state.Records, got.Records)
	assert.True(t, got.Loaded)
}

func TestState_UnmarshalRejectsUnknownMode(t *testing.T) {
	var got panel.State

	err := json.Unmarshal([]byte(`{"mode":"deleting","records":[]}`), &got)

	assert.Error(t, err)
}

func TestState_CloneIsDeep(t *testing.T) {
	state := panel.NewState()
	state.Records = []resource.Record{{"hotelName": "Grand"}}

	clone := state.Clone()
	clone.Records[0]["hotelName"] = "Plaza"

	assert.Equal(t, "Grand", state.Records[0]["hotelName"])
}
