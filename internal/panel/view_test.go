package panel_test

import (
	"encoding/json"
	bookingModel "hoteladmin/internal/domains/booking/model"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	roomModel "hoteladmin/internal/domains/room/model"
	"hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BookingDatesUseLocale(t *testing.T) {
	state := loadedState(resource.Record{
		"bookingId":    json.Number("4"),
		"checkInDate":  "2024-05-01",
		"checkOutDate": "2024-05-03",
		"totalPrice":   json.Number("300"),
	})

	view := panel.Render(bookingModel.Resource, *state, "en-US")

	require.Len(t, view.List.Rows, 1)
	assert.Equal(t, "4", view.List.Rows[0].Key)
	assert.Equal(t, "4", view.List.Rows[0].ID)
	assert.Equal(t, []string{"5/1/2024", "5/3/2024", "300"}, view.List.Rows[0].Cells)

	view = panel.Render(bookingModel.Resource, *state, "en-GB")
	assert.Equal(t, []string{"01/05/2024", "03/05/2024", "300"}, view.List.Rows[0].Cells)
}

func TestRender_ListColumnsAndCells(t *testing.T) {
	state := loadedState(
		resource.Record{"roomId": json.Number("1"), "roomNumber": "101", "roomType": "Suite", "price": json.Number("100"), "availability": true},
		resource.Record{"roomId": json.Number("2"), "roomNumber": "102", "roomType": "Single", "price": json.Number("80.5"), "availability": false},
	)

	view := panel.Render(roomModel.Resource, *state, "en-US")

	assert.Equal(t, "Room List", view.List.Title)
	assert.Equal(t, "Room Management Dashboard", view.Heading)
	assert.Equal(t, "Are you sure you want to delete this room?", view.ConfirmPrompt)
	assert.Equal(t, []panel.Column{
		{Name: "roomNumber", Header: "Room Number"},
		{Name: "roomType", Header: "Room Type"},
		{Name: "price", Header: "Price"},
		{Name: "availability", Header: "Availability"},
	}, view.List.Columns)

	require.Len(t, view.List.Rows, 2)
	assert.Equal(t, []string{"101", "Suite", "100", "Available"}, view.List.Rows[0].Cells)
	assert.Equal(t, []string{"102", "Single", "80.5", "Not Available"}, view.List.Rows[1].Cells)
	assert.False(t, view.Form.Visible)
	assert.Empty(t, view.Form.Inputs)
}

func TestRender_EmptyUntilLoaded(t *testing.T) {
	view := panel.Render(hotelModel.Resource, panel.NewState(), "en-US")

	assert.False(t, view.List.Loaded)
	assert.Empty(t, view.List.Rows)
}

func TestRender_AddForm(t *testing.T) {
	state := panel.NewState()
	state.Form = panel.Adding(hotelModel.Resource.NewDraft())

	view := panel.Render(hotelModel.Resource, state, "en-US")

	assert.True(t, view.Form.Visible)
	assert.Equal(t, panel.ModeAdding, view.Form.Mode)
	assert.Equal(t, "Add New Hotel", view.Form.Title)
	assert.Equal(t, "Add Hotel", view.Form.SubmitLabel)

	require.Len(t, view.Form.Inputs, 4)
	rating := view.Form.Inputs[2]
	assert.Equal(t, resource.KindNumber, rating.Kind)
	assert.Equal(t, "0", rating.Min)
	assert.Equal(t, "5", rating.Max)
	assert.Equal(t, "0.1", rating.Step)
	assert.Equal(t, resource.KindTel, view.Form.Inputs[3].Kind)
}

func TestRender_EditForm(t *testing.T) {
	state := panel.NewState()
	state.Form = panel.Editing(resource.Record{
		"bookingId":    json.Number("4"),
		"checkInDate":  "2024-05-01T12:00:00.000Z",
		"checkOutDate": "2024-05-03",
		"totalPrice":   json.Number("300"),
	})

	view := panel.Render(bookingModel.Resource, state, "en-US")

	assert.Equal(t, "Edit Booking", view.Form.Title)
	assert.Equal(t, "Update Booking", view.Form.SubmitLabel)
	assert.Equal(t, "2024-05-01", view.Form.Inputs[0].Value)
	assert.Equal(t, "2024-05-03", view.Form.Inputs[1].Value)
	assert.Equal(t, "300", view.Form.Inputs[2].Value)
}

func TestRender_CheckboxInput(t *testing.T) {
	state := panel.NewState()
	state.Form = panel.Adding(roomModel.Resource.NewDraft())

	view := panel.Render(roomModel.Resource, state, "en-US")

	availability := view.Form.Inputs[3]
	assert.Equal(t, resource.KindCheckbox, availability.Kind)
	assert.Equal(t, "Available", availability.Label)
	assert.True(t, availability.Checked)
}

func TestRender_RowWithoutIdentity(t *testing.T) {
	state := loadedState(
		resource.Record{"hotelName": "Nameless"},
		resource.Record{"hotelId": json.Number("0"), "hotelName": "Zero"},
	)

	view := panel.Render(hotelModel.Resource, *state, "en-US")

	require.Len(t, view.List.Rows, 2)
	assert.Empty(t, view.List.Rows[0].ID)
	assert.NotEqual(t, "0", view.List.Rows[0].Key)
	assert.Equal(t, "0", view.List.Rows[1].ID)
	assert.Equal(t, "0", view.List.Rows[1].Key)
}
