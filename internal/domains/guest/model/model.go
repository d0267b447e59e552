package model

import "hoteladmin/internal/resource"

const (
	EntityName = "guest"

	FieldID          = "guestId"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

var Resource = resource.Descriptor{
	Name:    EntityName,
	Title:   "Guest",
	IDField: FieldID,
	Heading: "Guest Management Dashboard",
	Fields: []resource.Field{
		{Name: FieldFirstName, Label: "First Name", Kind: resource.KindText, Required: true},
		{Name: FieldLastName, Label: "Last Name", Kind: resource.KindText, Required: true},
		{Name: FieldEmail, Label: "Email", Kind: resource.KindEmail, Required: true},
		{Name: FieldPhoneNumber, Label: "Phone Number", Kind: resource.KindTel, Required: true},
	},
}
