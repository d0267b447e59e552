package model

import "hoteladmin/internal/resource"

const (
	EntityName = "booking"

	FieldID           = "bookingId"
	FieldCheckInDate  = "checkInDate"
	FieldCheckOutDate = "checkOutDate"
	FieldTotalPrice   = "totalPrice"
)

// Resource describes bookings. totalPrice is entered by hand; nothing derives
// it from room price and nights.
var Resource = resource.Descriptor{
	Name:    EntityName,
	Title:   "Booking",
	IDField: FieldID,
	Heading: "Booking Management Dashboard",
	Fields: []resource.Field{
		{Name: FieldCheckInDate, Label: "Check-In Date", Kind: resource.KindDate, Required: true},
		{Name: FieldCheckOutDate, Label: "Check-Out Date", Kind: resource.KindDate, Required: true},
		{Name: FieldTotalPrice, Label: "Total Price", Kind: resource.KindNumber, Required: true},
	},
}
