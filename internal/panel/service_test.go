package panel_test

import (
	"context"
	"errors"
	"hoteladmin/config"
	backendMocks "hoteladmin/infras/backend/mocks"
	otelMocks "hoteladmin/infras/otel/mocks"
	guestModel "hoteladmin/internal/domains/guest/model"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	"hoteladmin/internal/panel"
	panelMocks "hoteladmin/internal/panel/mocks"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, store panel.Store) (panel.Service, *backendMocks.MockResourceClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := backendMocks.NewMockResourceClient(ctrl)

	cfg := &config.Config{}
	cfg.App.Locale = "en-US"

	return panel.NewService(cfg, client, store, otelMocks.NewOtel()), client
}

func TestService_EditFlowAcrossRequests(t *testing.T) {
	ctx := context.Background()
	service, client := newService(t, panel.NewMemoryStore())

	updated := grandHotel()
	updated["location"] = "Boston"

	gomock.InOrder(
		client.EXPECT().List(gomock.Any(), hotelModel.Resource).Return([]resource.Record{grandHotel()}, nil),
		client.EXPECT().Update(gomock.Any(), hotelModel.Resource, "1", updated).Return(nil),
		client.EXPECT().List(gomock.Any(), hotelModel.Resource).Return([]resource.Record{updated}, nil),
	)

	view, res := service.Mount(ctx, "s1", hotelModel.Resource)
	require.True(t, res.Succeeded())
	require.Len(t, view.List.Rows, 1)
	assert.Equal(t, "1", view.List.Rows[0].Key)

	view, res = service.OpenEdit(ctx, "s1", hotelModel.Resource, "1")
	require.True(t, res.Succeeded())
	assert.True(t, view.Form.Visible)
	assert.Equal(t, "Edit Hotel", view.Form.Title)

	view, res = service.Change(ctx, "s1", hotelModel.Resource, map[string]string{"location": "Boston"})
	require.True(t, res.Succeeded())
	assert.Equal(t, "Boston", view.Form.Inputs[1].Value)

	view, res = service.Submit(ctx, "s1", hotelModel.Resource, nil)
	require.True(t, res.Succeeded())
	assert.False(t, view.Form.Visible)
	assert.Equal(t, "Boston", view.List.Rows[0].Cells[1])
}

func TestService_SubmitAppliesValues(t *testing.T) {
	ctx := context.Background()
	service, client := newService(t, panel.NewMemoryStore())

	_, res := service.OpenAdd(ctx, "s1", guestModel.Resource)
	require.True(t, res.Succeeded())

	draft := resource.Record{"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "phoneNumber": "555"}

	gomock.InOrder(
		client.EXPECT().Create(gomock.Any(), guestModel.Resource, draft).Return(nil),
		client.EXPECT().List(gomock.Any(), guestModel.Resource).Return([]resource.Record{}, nil),
	)

	view, res := service.Submit(ctx, "s1", guestModel.Resource, map[string]string{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phoneNumber": "555",
	})

	assert.Equal(t, panel.OK, res.Outcome)
	assert.False(t, view.Form.Visible)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, panel.NewMemoryStore())

	view, _ := service.OpenAdd(ctx, "s1", hotelModel.Resource)
	assert.True(t, view.Form.Visible)

	view, _ = service.Cancel(ctx, "s2", hotelModel.Resource)
	assert.False(t, view.Form.Visible)

	view, res := service.Change(ctx, "s1", hotelModel.Resource, map[string]string{"hotelName": "Grand"})
	require.True(t, res.Succeeded())
	assert.Equal(t, "Grand", view.Form.Inputs[0].Value)
}

func TestService_DeclinedDelete(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, panel.NewMemoryStore())

	_, res := service.Delete(ctx, "s1", hotelModel.Resource, "1", false)

	assert.Equal(t, panel.Declined, res.Outcome)
}

func TestService_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("load", func(t *testing.T) {
		store := panelMocks.NewMockStore(gomock.NewController(t))
		service, _ := newService(t, store)

		store.EXPECT().Load(gomock.Any(), "s1", "hotel").Return(panel.NewState(), errors.New("redis down"))

		view, res := service.OpenAdd(ctx, "s1", hotelModel.Resource)

		assert.Equal(t, panel.Failed, res.Outcome)
		assert.False(t, view.Form.Visible)

		var fail *failure.Failure
		require.ErrorAs(t, res.Err, &fail)
		assert.Equal(t, http.StatusInternalServerError, fail.Code)
	})

	t.Run("save", func(t *testing.T) {
		store := panelMocks.NewMockStore(gomock.NewController(t))
		service, _ := newService(t, store)

		store.EXPECT().Load(gomock.Any(), "s1", "hotel").Return(panel.NewState(), nil)
		store.EXPECT().Save(gomock.Any(), "s1", "hotel", gomock.Any()).Return(errors.New("redis down"))

		_, res := service.OpenAdd(ctx, "s1", hotelModel.Resource)

		assert.Equal(t, panel.Failed, res.Outcome)

		var fail *failure.Failure
		require.ErrorAs(t, res.Err, &fail)
		assert.Equal(t, http.StatusInternalServerError, fail.Code)
		assert.Contains(t, fail.Message, "redis down")
	})
}

func TestService_ShowUsesSavedState(t *testing.T) {
	ctx := context.Background()
	service, client := newService(t, panel.NewMemoryStore())

	client.EXPECT().List(gomock.Any(), hotelModel.Resource).Return([]resource.Record{grandHotel()}, nil).Times(1)

	_, res := service.Mount(ctx, "s1", hotelModel.Resource)
	require.True(t, res.Succeeded())

	view, res := service.Show(ctx, "s1", hotelModel.Resource)

	assert.Equal(t, panel.OK, res.Outcome)
	require.Len(t, view.List.Rows, 1)
	assert.Equal(t, "Grand", view.List.Rows[0].Cells[0])
}
