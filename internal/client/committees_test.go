package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfin-io/campfin/pkg/campfin"
)

func TestCommitteesClient_Latest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/new.json", request.URL.Path)
		writeResults(t, writer, []campfin.Committee{
			{ID: "C00553560", Name: "FRIENDS OF CHRIS", Party: "REP"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	committees, err := client.Committees().Latest(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, committees, 1)
	assert.Equal(t, "C00553560", committees[0].ID)
}

func TestCommitteesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/C00431445.json", request.URL.Path)
		writeResults(t, writer, []campfin.Committee{
			{ID: "C00431445", Name: "OBAMA FOR AMERICA", Treasurer: "OPHIR, MARTIN H."},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	committee, err := client.Committees().Get(context.Background(), "C00431445", nil)
	require.NoError(t, err)
	assert.Equal(t, "OBAMA FOR AMERICA", committee.Name)
	assert.Equal(t, "OPHIR, MARTIN H.", committee.Treasurer)
}

func TestCommitteesClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/search.json", request.URL.Path)
		assert.Equal(t, "progress", request.URL.Query().Get("query"))
		writeResults(t, writer, []campfin.Committee{{ID: "C00495861", Name: "PROGRESS FOR AMERICA"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	committees, err := client.Committees().Search(context.Background(), "progress", nil)
	require.NoError(t, err)
	require.Len(t, committees, 1)
	assert.Equal(t, "PROGRESS FOR AMERICA", committees[0].Name)
}

func TestCommitteesClient_Filings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/C00431445/filings.json", request.URL.Path)
		writeResults(t, writer, []campfin.Filing{{ID: 777, Committee: "/committees/C00431445.json"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	filings, err := client.Committees().Filings(context.Background(), "C00431445", nil)
	require.NoError(t, err)
	require.Len(t, filings, 1)
	assert.Equal(t, 777, filings[0].ID)
}

func TestCommitteesClient_Contributions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/C00553560/contributions.json", request.URL.Path)
		writeResults(t, writer, []campfin.Contribution{
			{CandidateName: "SMITH, BOB", Amount: 5000, Support: true},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	contributions, err := client.Committees().Contributions(context.Background(), "C00553560", nil)
	require.NoError(t, err)
	require.Len(t, contributions, 1)
	assert.InEpsilon(t, 5000.0, contributions[0].Amount, 0.001)
	assert.True(t, contributions[0].Support)
}

func TestCommitteesClient_ContributionsToCandidate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/C00553560/contributions/candidates/H0MO04110.json", request.URL.Path)
		writeResults(t, writer, []campfin.Contribution{
			{Candidate: "/candidates/H0MO04110.json", Amount: 2500},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	contributions, err := client.Committees().ContributionsToCandidate(context.Background(), "C00553560", "H0MO04110", nil)
	require.NoError(t, err)
	require.Len(t, contributions, 1)
	assert.InEpsilon(t, 2500.0, contributions[0].Amount, 0.001)
}

func TestCommitteesClient_Leadership(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/2012/committees/leadership.json", request.URL.Path)
		writeResults(t, writer, []campfin.Committee{{ID: "C00409066", Leadership: true}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	committees, err := client.Committees().Leadership(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, committees, 1)
	assert.True(t, committees[0].Leadership)
}
