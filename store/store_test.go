package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxmitra/itr-engine/dto"
)

func TestSaveAssignsID(t *testing.T) {
	s := NewClientStore()

	summary := &dto.ClientSummary{Name: "Rohan Mehta"}
	id := s.Save(summary)

	require.NotEmpty(t, id)
	assert.Equal(t, id, summary.ClientID)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Rohan Mehta", got.Name)
}

func TestSaveKeepsExistingID(t *testing.T) {
	s := NewClientStore()

	summary := &dto.ClientSummary{ClientID: "client-1", Name: "Priya Shah"}
	assert.Equal(t, "client-1", s.Save(summary))

	updated := &dto.ClientSummary{ClientID: "client-1", Name: "Priya S Shah"}
	s.Save(updated)

	got, _ := s.Get("client-1")
	assert.Equal(t, "Priya S Shah", got.Name)
	assert.Len(t, s.List(), 1)
}

func TestGetMissing(t *testing.T) {
	s := NewClientStore()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestListInsertionOrder(t *testing.T) {
	s := NewClientStore()

	s.Save(&dto.ClientSummary{ClientID: "a", Name: "First"})
	s.Save(&dto.ClientSummary{ClientID: "b", Name: "Second"})
	s.Save(&dto.ClientSummary{ClientID: "c", Name: "Third"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Third", list[2].Name)
}
