package blindpay

import (
	"context"
	"fmt"
)

const (
	instancePath        = "/instances/%s"
	instanceMembersPath = "/instances/%s/members"
	instanceMemberPath  = "/instances/%s/members/%s"
)

// InstanceMemberRole is the permission tier of a dashboard member.
type InstanceMemberRole string

const (
	InstanceMemberRoleOwner      InstanceMemberRole = "owner"
	InstanceMemberRoleAdmin      InstanceMemberRole = "admin"
	InstanceMemberRoleFinance    InstanceMemberRole = "finance"
	InstanceMemberRoleChecker    InstanceMemberRole = "checker"
	InstanceMemberRoleOperations InstanceMemberRole = "operations"
	InstanceMemberRoleDeveloper  InstanceMemberRole = "developer"
	InstanceMemberRoleViewer     InstanceMemberRole = "viewer"
)

func (r InstanceMemberRole) Validate() error {
	switch r {
	case InstanceMemberRoleOwner, InstanceMemberRoleAdmin, InstanceMemberRoleFinance, InstanceMemberRoleChecker,
		InstanceMemberRoleOperations, InstanceMemberRoleDeveloper, InstanceMemberRoleViewer:
		return nil
	default:
		return fmt.Errorf("invalid instance member role %q", r)
	}
}

// InstanceMember is a human user with access to the instance.
type InstanceMember struct {
	ID         string             `json:"id"`
	Email      string             `json:"email"`
	FirstName  string             `json:"first_name"`
	MiddleName string             `json:"middle_name"`
	LastName   string             `json:"last_name"`
	ImageURL   string             `json:"image_url"`
	CreatedAt  string             `json:"created_at"`
	Role       InstanceMemberRole `json:"role"`
}

type UpdateInstanceInput struct {
	Name                      string `json:"name"`
	ReceiverInviteRedirectURL string `json:"receiver_invite_redirect_url,omitempty"`
}

func (i UpdateInstanceInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.ReceiverInviteRedirectURL != "" {
		if err := validateURL(i.ReceiverInviteRedirectURL); err != nil {
			return err
		}
	}
	return nil
}

type UpdateInstanceMemberRoleInput struct {
	MemberID string             `json:"member_id"`
	Role     InstanceMemberRole `json:"role"`
}

func (i UpdateInstanceMemberRoleInput) Validate() error {
	if i.MemberID == "" {
		return fmt.Errorf("member_id is required")
	}
	return i.Role.Validate()
}

// updateMemberRoleRequest is the wire body for a role change. The member
// ID travels in the URL, not the body.
type updateMemberRoleRequest struct {
	Role InstanceMemberRole `json:"role"`
}

// InstancesService manages the instance itself and its members.
type InstancesService struct {
	client *Client
}

// GetMembers returns the members of the instance.
func (s *InstancesService) GetMembers(ctx context.Context) ([]InstanceMember, error) {
	path := fmt.Sprintf(instanceMembersPath, s.client.instanceID)
	members, err := get[[]InstanceMember](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *members, nil
}

// Update changes the instance's display name and invite redirect URL.
func (s *InstancesService) Update(ctx context.Context, input UpdateInstanceInput) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("validating update instance input: %w", err)
	}

	path := fmt.Sprintf(instancePath, s.client.instanceID)
	_, err := put[struct{}](ctx, s.client, path, input)
	return err
}

// Delete permanently removes the instance.
func (s *InstancesService) Delete(ctx context.Context) error {
	path := fmt.Sprintf(instancePath, s.client.instanceID)
	return del(ctx, s.client, path)
}

// DeleteMember revokes a member's access to the instance.
func (s *InstancesService) DeleteMember(ctx context.Context, memberID string) error {
	if memberID == "" {
		return fmt.Errorf("memberID is required")
	}

	path := fmt.Sprintf(instanceMemberPath, s.client.instanceID, memberID)
	return del(ctx, s.client, path)
}

// UpdateMemberRole changes a member's permission tier.
func (s *InstancesService) UpdateMemberRole(ctx context.Context, input UpdateInstanceMemberRoleInput) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("validating update instance member role input: %w", err)
	}

	path := fmt.Sprintf(instanceMemberPath, s.client.instanceID, input.MemberID)
	_, err := put[struct{}](ctx, s.client, path, updateMemberRoleRequest{Role: input.Role})
	return err
}
