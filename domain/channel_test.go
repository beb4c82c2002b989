package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChannelID_Deterministic(t *testing.T) {
	req := require.New(t)
	req.Equal(NewChannelID("p1", "org1"), NewChannelID("p1", "org1"))
	req.NotEqual(NewChannelID("p1", "org1"), NewChannelID("p1", "org2"))
	req.NotEqual(NewChannelID("p1", "org1"), NewChannelID("p2", "org1"))
	req.NotEqual(NewChannelID("c", "a:b"), NewChannelID("b:c", "a"))
	req.NotEqual(NewChannelID("eu:p1", "acme"), NewChannelID("p1", "acme:eu"))
}

func TestChannelMembers_ClientsAndAdmins(t *testing.T) {
	project := Project{ID: "p1", OrganizationID: "org", ClientIDs: []string{"c1", "a1"}}
	users := []User{
		{ID: "a1", Role: RoleAdmin},
		{ID: "a2", Role: RoleAdmin},
		{ID: "m1", Role: RoleMember},
		{ID: "c2", Role: RoleClient},
	}

	members := ChannelMembers(project, users)

	require.ElementsMatch(t, []string{"c1", "a1", "a2"}, members)
}

func TestChannel_Recipients(t *testing.T) {
	ch := Channel{Members: []string{"A", "B", "C"}}
	require.ElementsMatch(t, []string{"B", "C"}, ch.Recipients("A"))
	require.ElementsMatch(t, []string{"A", "B", "C"}, ch.Recipients("outsider"))
}
