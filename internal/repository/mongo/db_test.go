package mongo

import (
	"testing"
	"time"

	"arena45/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoTimezone(t *testing.T) {
	assert.Equal(t, "UTC", mongoTimezone(time.UTC, time.Now()))
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", mongoTimezone(berlin, time.Now()))
	fixed := time.FixedZone("", -5*3600-30*60)
	assert.Equal(t, "-05:30", mongoTimezone(fixed, time.Now()))
}

func TestBookingFilter(t *testing.T) {
	day := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	end := day.Add(24*time.Hour - time.Millisecond)

	assert.Equal(t, bson.M{}, bookingFilter(domain.BookingFilter{}))
	assert.Equal(t, bson.M{
		"status":  domain.BookingPending,
		"service": domain.ServiceEMS,
		"date":    bson.M{"$gte": day, "$lte": end},
	}, bookingFilter(domain.BookingFilter{
		Status:   domain.BookingPending,
		Service:  domain.ServiceEMS,
		DayStart: day,
		DayEnd:   end,
	}))
}

func TestPageOptions(t *testing.T) {
	opts := pageOptions(domain.NewPage(3, 20))
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 40, *opts.Skip)
	assert.EqualValues(t, 20, *opts.Limit)
}

func TestSetIf(t *testing.T) {
	set := bson.M{}
	name := "x"
	setIf(set, "name", &name)
	setIf[string](set, "phone", nil)
	assert.Equal(t, bson.M{"name": "x"}, set)
}
