// Package domain contains core concepts of the collaboration hub.
// This file defines directory entities: users and projects.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/samber/lo"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleClient Role = "client"
)

type User struct {
	ID             string
	OrganizationID string
	Name           string
	Avatar         string
	Email          string
	Role           Role
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func AdminsOf(users []User) []User {
	return lo.Filter(users, func(u User, _ int) bool { return u.IsAdmin() })
}

type Project struct {
	ID             string
	OrganizationID string
	Name           string
	ClientIDs      []string
}
