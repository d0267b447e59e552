package model

import "hoteladmin/internal/resource"

const (
	EntityName = "hotel"

	FieldID            = "hotelId"
	FieldHotelName     = "hotelName"
	FieldLocation      = "location"
	FieldRating        = "rating"
	FieldContactNumber = "contactNumber"
)

var Resource = resource.Descriptor{
	Name:    EntityName,
	Title:   "Hotel",
	IDField: FieldID,
	Heading: "Hotel Admin Dashboard",
	Fields: []resource.Field{
		{Name: FieldHotelName, Label: "Hotel Name", Kind: resource.KindText, Required: true},
		{Name: FieldLocation, Label: "Location", Kind: resource.KindText, Required: true},
		{Name: FieldRating, Label: "Rating", Kind: resource.KindNumber, Required: true, Min: "0", Max: "5", Step: "0.1"},
		{Name: FieldContactNumber, Label: "Contact Number", Column: "Contact", Kind: resource.KindTel, Required: true},
	},
}
