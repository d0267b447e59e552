package domains_test

import (
	"hoteladmin/internal/domains"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg, err := domains.NewRegistry()
	require.NoError(t, err)

	names := make([]string, 0, 5)
	for _, desc := range reg.All() {
		names = append(names, desc.Name)
	}

	assert.Equal(t, []string{"hotel", "room", "guest", "booking", "payment"}, names)
	assert.Equal(t, "hotel", reg.Default().Name)

	room, ok := reg.Get("room")
	require.True(t, ok)
	assert.Equal(t, "roomId", room.IDField)
	assert.Equal(t, true, room.NewDraft()["availability"])

	_, ok = reg.Get("invoice")
	assert.False(t, ok)
}

func TestRegistry_Paths(t *testing.T) {
	reg, err := domains.NewRegistry()
	require.NoError(t, err)

	want := map[string][3]string{
		"hotel":   {"/createHotel", "/updateHotel/7", "/deleteHotel/7"},
		"room":    {"/createRoom", "/updateRoom/7", "/deleteRoom/7"},
		"guest":   {"/createGuest", "/updateGuest/7", "/deleteGuest/7"},
		"booking": {"/createBooking", "/updateBooking/7", "/deleteBooking/7"},
		"payment": {"/createPayment", "/updatePayment/7", "/deletePayment/7"},
	}

	for name, paths := range want {
		desc, ok := reg.Get(name)
		require.True(t, ok, name)

		assert.Equal(t, "/"+name, desc.CollectionPath())
		assert.Equal(t, paths[0], desc.CreatePath())
		assert.Equal(t, paths[1], desc.UpdatePath("7"))
		assert.Equal(t, paths[2], desc.DeletePath("7"))
	}
}
