package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) scheduleVisit(t *testing.T, ctx context.Context, date string) *service.CreateVisitInput {
	property, err := e.propertySvc.CreateProperty(ctx, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)
	client, err := e.clientSvc.CreateClient(ctx, service.CreateClientInput{FullName: "Laura"})
	require.NoError(t, err)

	return &service.CreateVisitInput{
		PropertyID: property.ID.String(),
		ClientID:   client.ID.String(),
		VisitDate:  date,
	}
}

func TestCreateVisitStoresWallClockVerbatim(t *testing.T) {
	env := newTestEnv(t)
	agencyID, ctx := env.newAgency(t, "Agencia")

	input := env.scheduleVisit(t, ctx, "2024-07-21T17:23:00")
	visit, err := env.visitSvc.CreateVisit(ctx, *input)
	require.NoError(t, err)
	assert.Equal(t, agencyID, visit.AgencyID)
	assert.Equal(t, "2024-07-21T17:23:00", visit.VisitDate)

	got, err := env.visitSvc.GetVisit(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-21T17:23:00", got.VisitDate)
}

func TestCreateVisitRejectsMalformedDate(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	for _, bad := range []string{"2024-07-21", "21/07/2024 17:23", "2024-07-21T17:23:00Z", "soon"} {
		input := env.scheduleVisit(t, ctx, bad)
		_, err := env.visitSvc.CreateVisit(ctx, *input)
		require.Error(t, err, "expected %q to be rejected", bad)
		assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	}
}

func TestCreateVisitRejectsCrossTenantProperty(t *testing.T) {
	env := newTestEnv(t)
	_, ctxA := env.newAgency(t, "Agencia A")
	_, ctxB := env.newAgency(t, "Agencia B")

	property, err := env.propertySvc.CreateProperty(ctxA, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)
	client, err := env.clientSvc.CreateClient(ctxB, service.CreateClientInput{FullName: "Laura"})
	require.NoError(t, err)

	_, err = env.visitSvc.CreateVisit(ctxB, service.CreateVisitInput{
		PropertyID: property.ID.String(),
		ClientID:   client.ID.String(),
		VisitDate:  "2024-07-21T17:23:00",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestMonthScheduleBucketsWithoutTimezoneShift(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	// A late-evening visit stays on its own day; with timezone conversion it
	// could slide to the 22nd in an eastern zone or the 20th in a western one.
	input := env.scheduleVisit(t, ctx, "2024-07-21T23:30:00")
	_, err := env.visitSvc.CreateVisit(ctx, *input)
	require.NoError(t, err)

	input = env.scheduleVisit(t, ctx, "2024-07-21T09:00:00")
	_, err = env.visitSvc.CreateVisit(ctx, *input)
	require.NoError(t, err)

	input = env.scheduleVisit(t, ctx, "2024-08-01T00:00:00")
	_, err = env.visitSvc.CreateVisit(ctx, *input)
	require.NoError(t, err)

	schedule, err := env.visitSvc.GetMonthSchedule(ctx, 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 31, schedule.DaysInMonth)
	assert.Equal(t, 1, schedule.LeadingWeekday) // July 2024 starts on a Monday
	require.Len(t, schedule.Days, 1)
	assert.Len(t, schedule.Days["2024-07-21"], 2)
}

func TestMonthScheduleRejectsBadMonth(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	_, err := env.visitSvc.GetMonthSchedule(ctx, 2024, time.Month(13))
	assert.Error(t, err)
}

func TestUpdateVisitValidatesNewDate(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	input := env.scheduleVisit(t, ctx, "2024-07-21T17:23:00")
	visit, err := env.visitSvc.CreateVisit(ctx, *input)
	require.NoError(t, err)

	bad := "tomorrow"
	_, err = env.visitSvc.UpdateVisit(ctx, visit.ID, service.UpdateVisitInput{VisitDate: &bad})
	require.Error(t, err)

	good := "2024-07-22T10:00:00"
	updated, err := env.visitSvc.UpdateVisit(ctx, visit.ID, service.UpdateVisitInput{VisitDate: &good})
	require.NoError(t, err)
	assert.Equal(t, good, updated.VisitDate)
}
