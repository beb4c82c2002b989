package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ChannelID string

func (c ChannelID) String() string { return string(c) }

// channelNamespace seeds the UUIDv5 derivation of channel ids.
var channelNamespace = uuid.MustParse("6f1c2a7e-4d0b-5b8e-9a43-2c1f0d7e9b11")

// NewChannelID derives the id of the single channel bound to a project
// within an organization. The same pair always yields the same id. The
// organization is length-prefixed so that no two pairs share a seed.
func NewChannelID(projectID, organizationID string) ChannelID {
	seed := fmt.Sprintf("%d:%s:%s", len(organizationID), organizationID, projectID)
	return ChannelID(uuid.NewSHA1(channelNamespace, []byte(seed)).String())
}

// Preview is the denormalized last-message summary shown in channel lists.
type Preview struct {
	Text string
	At   time.Time
}

// Channel is the chat space of one project. Members are frozen when the
// channel is created.
type Channel struct {
	ID             ChannelID
	ProjectID      string
	OrganizationID string
	ProjectName    string
	Members        []string
	CreatedAt      time.Time
	LastMessage    *Preview
}

// Recipients returns every member except the sender.
func (c Channel) Recipients(senderID string) []string {
	return lo.Without(c.Members, senderID)
}

// ChannelMembers computes the membership of a new channel: the project's
// clients plus every admin of the tenant.
func ChannelMembers(project Project, users []User) []string {
	admins := lo.Map(AdminsOf(users), func(u User, _ int) string { return u.ID })
	return lo.Uniq(append(append([]string{}, project.ClientIDs...), admins...))
}
