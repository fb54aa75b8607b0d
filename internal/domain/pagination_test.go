package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_Defaults(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: 10}, NewPage(0, 0))
	assert.Equal(t, Page{Number: 1, Limit: 10}, NewPage(-3, -1))
	assert.Equal(t, Page{Number: 4, Limit: 100}, NewPage(4, 1000))
	assert.EqualValues(t, 30, NewPage(4, 10).Skip())
}

func TestNewPagination_TotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 7, 4},
	}
	for _, tt := range tests {
		p := NewPagination(NewPage(1, tt.limit), tt.total)
		assert.Equal(t, tt.want, p.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, p.TotalItems)
		assert.Equal(t, tt.limit, p.ItemsPerPage)
	}
}

func TestEnums(t *testing.T) {
	assert.True(t, ServiceEMS.IsValid())
	assert.False(t, ServiceType("yoga").IsValid())
	assert.Equal(t, "CrossFit Training", ServiceCrossFit.DisplayName())
	assert.True(t, BookingCancelled.IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
	assert.True(t, ContactResolved.IsValid())
	assert.False(t, ContactStatus("closed").IsValid())
	assert.Equal(t, PeriodMonth, ParseStatsPeriod("decade"))
	assert.Equal(t, PeriodWeek, ParseStatsPeriod("week"))
}
