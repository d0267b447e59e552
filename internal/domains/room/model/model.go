package model

import "hoteladmin/internal/resource"

const (
	EntityName = "room"

	FieldID           = "roomId"
	FieldRoomNumber   = "roomNumber"
	FieldRoomType     = "roomType"
	FieldPrice        = "price"
	FieldAvailability = "availability"
)

var Resource = resource.Descriptor{
	Name:    EntityName,
	Title:   "Room",
	IDField: FieldID,
	Heading: "Room Management Dashboard",
	Fields: []resource.Field{
		{Name: FieldRoomNumber, Label: "Room Number", Kind: resource.KindText, Required: true},
		{Name: FieldRoomType, Label: "Room Type", Kind: resource.KindText, Required: true},
		{Name: FieldPrice, Label: "Price", Kind: resource.KindNumber, Required: true, Min: "0"},
		{
			Name:      FieldAvailability,
			Label:     "Available",
			Column:    "Availability",
			Kind:      resource.KindCheckbox,
			Default:   true,
			TrueText:  "Available",
			FalseText: "Not Available",
		},
	},
}
