package models

// AdminSession is an authenticated administrator scoped to one organization
type AdminSession struct {
	AdminID        string `json:"adminId"`
	OrganizationID string `json:"organizationId"`
	ExpiresAt      int64  `json:"exp"`
	IssuedAt       int64  `json:"iat"`
}

// CanAccess reports whether the session may act on organizationID
func (s *AdminSession) CanAccess(organizationID string) bool {
	return s != nil && s.OrganizationID != "" && s.OrganizationID == organizationID
}
