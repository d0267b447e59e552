package model

import "hoteladmin/internal/resource"

const (
	EntityName = "payment"

	FieldID            = "paymentId"
	FieldAmount        = "amount"
	FieldPaymentDate   = "paymentDate"
	FieldPaymentMethod = "paymentMethod"
)

var Resource = resource.Descriptor{
	Name:    EntityName,
	Title:   "Payment",
	IDField: FieldID,
	Heading: "Payment Management Dashboard",
	Fields: []resource.Field{
		{Name: FieldAmount, Label: "Amount", Kind: resource.KindNumber, Required: true},
		{Name: FieldPaymentDate, Label: "Payment Date", Kind: resource.KindDate, Required: true},
		{Name: FieldPaymentMethod, Label: "Payment Method", Kind: resource.KindText, Required: true},
	},
}
